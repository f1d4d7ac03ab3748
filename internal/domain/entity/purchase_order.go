package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. La confiabilidad de un proveedor es el
// porcentaje de sus órdenes que llegaron a "received".
const (
	PurchaseOrderStatusPending   = "pending"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// El backend actual las deriva de recepciones de stock (siempre "received"),
// pero el motor de agregación maneja los tres estados.
type PurchaseOrder struct {
	ID           string
	Number       string // ej: "PO-17", derivado del ID del backend
	SupplierID   string
	SupplierName string
	Status       string
	TotalAmount  decimal.Decimal
	OrderDate    time.Time
	ReceivedDate time.Time
	Notes        string
	CreatedAt    time.Time
}
