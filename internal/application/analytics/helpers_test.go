package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: constructores compactos de entidades y aserciones decimales
// ──────────────────────────────────────────────────────────────────────────────

// d parsea un decimal literal; panic en tests si el literal está mal escrito.
func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ts parsea un instante RFC3339.
func ts(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("timestamp de test inválido %q: %v", s, err)
	}
	return at
}

// assertDecimal compara decimales por valor, no por representación
// (0.1 y 0.10 son el mismo valor).
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: esperaba %s, obtuvo %s", msg, want, got)
}

// line construye una línea de factura con el total ya calculado.
func line(itemID, name string, qty int, total string) entity.InvoiceItem {
	return entity.InvoiceItem{
		InventoryItemID: itemID,
		Name:            name,
		Quantity:        qty,
		Total:           d(total),
	}
}

// invoice construye una factura con estado y total explícitos.
func invoice(id, status, total string, createdAt time.Time, lines ...entity.InvoiceItem) entity.Invoice {
	return entity.Invoice{
		ID:        id,
		Number:    "INV-" + id,
		Status:    status,
		Total:     d(total),
		Items:     lines,
		CreatedAt: createdAt,
	}
}

// paid construye una factura pagada.
func paid(id, total string, createdAt time.Time, lines ...entity.InvoiceItem) entity.Invoice {
	return invoice(id, entity.InvoiceStatusPaid, total, createdAt, lines...)
}

// item construye un producto de inventario con stock y costo.
func item(id, name string, stock, minStock int, costPrice string) entity.InventoryItem {
	return entity.InventoryItem{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + id,
		Stock:     stock,
		MinStock:  minStock,
		CostPrice: d(costPrice),
	}
}
