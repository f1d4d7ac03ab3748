package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un producto del inventario con su nivel de stock,
// ya desnormalizado por la fachada de datos (producto × inventario × categoría
// × proveedor en un solo registro).
//
// Stock y MinStock son contadores independientes: "stock bajo" es
// Stock <= MinStock y "agotado" es Stock == 0.
type InventoryItem struct {
	ID          string
	Name        string
	Description string
	SKU         string
	Category    string
	Subcategory string
	Unit        string
	Source      string // nombre del proveedor de origen, vacío si no tiene
	Status      string
	CostPrice   decimal.Decimal // costo de compra; cero si el backend lo omite u oculta
	SalePrice   decimal.Decimal
	Discount    decimal.Decimal // porcentaje 0–100
	Stock       int
	MinStock    int
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLowStock indica si el producto está en o por debajo de su nivel de reorden.
func (it InventoryItem) IsLowStock() bool { return it.Stock <= it.MinStock }

// IsOutOfStock indica si el producto está agotado.
func (it InventoryItem) IsOutOfStock() bool { return it.Stock == 0 }
