package repository

import (
	"context"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// InvoiceRepository define la lectura de facturas de venta.
type InvoiceRepository interface {
	// ListInvoices devuelve todas las facturas con sus líneas desnormalizadas
	// (nombre y SKU de producto inline). Incluye facturas en cualquier estado;
	// el filtro por "paid" es responsabilidad del motor de agregación.
	ListInvoices(ctx context.Context) ([]entity.Invoice, error)
}
