package repository

import (
	"context"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// InventoryRepository define la lectura del inventario completo.
// Las implementaciones son read-only: cada llamada devuelve un snapshot
// fresco ya desnormalizado; el motor de agregación nunca muta estos datos.
type InventoryRepository interface {
	// ListItems devuelve todos los productos del inventario con su stock.
	ListItems(ctx context.Context) ([]entity.InventoryItem, error)
}
