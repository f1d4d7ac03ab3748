package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura. Solo las facturas "paid" aportan a los agregados
// financieros (ingresos, utilidad, valor de cliente); draft/pending/cancelled
// quedan excluidas de todos ellos.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice representa la cabecera de una factura de venta, ya desnormalizada
// por la fachada de datos (las líneas traen nombre y SKU del producto inline).
type Invoice struct {
	ID            string
	Number        string // ej: "INV-42", derivado del ID del backend
	CustomerName  string
	CustomerEmail string // puede venir vacío; la identidad de cliente cae a CustomerName
	Status        string
	PaymentMethod string
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}

// IsPaid indica si la factura aporta a los agregados financieros.
func (i Invoice) IsPaid() bool { return i.Status == InvoiceStatusPaid }

// InvoiceItem es una línea de factura.
// Total = Price * (1 - Discount/100) * Quantity; lo calcula el backend.
type InvoiceItem struct {
	ID              string
	InventoryItemID string // ID del producto en inventario (clave de agrupación)
	Name            string
	SKU             string
	Quantity        int
	Price           decimal.Decimal
	Discount        decimal.Decimal // porcentaje 0–100
	Total           decimal.Decimal
}
