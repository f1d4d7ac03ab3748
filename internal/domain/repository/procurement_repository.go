package repository

import (
	"context"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// SupplierRepository define la lectura de proveedores.
type SupplierRepository interface {
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
}

// PurchaseOrderRepository define la lectura de órdenes de compra.
type PurchaseOrderRepository interface {
	ListPurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error)
}
