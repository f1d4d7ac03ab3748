package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProfitAnalytics
// ──────────────────────────────────────────────────────────────────────────────

// Ingresos 20, costo 6×2=12 → utilidad 8 y margen 40%.
func TestProfitAnalytics_CalculaUtilidadYMargen(t *testing.T) {
	invoices := []entity.Invoice{
		paid("1", "20", ts(t, "2024-06-01T10:00:00Z"), line("item-1", "Café", 2, "20")),
	}
	items := []entity.InventoryItem{item("item-1", "Café", 10, 2, "6")}

	got := analytics.ProfitAnalytics(invoices, items)

	assertDecimal(t, "20", got.TotalRevenue, "ingresos")
	assertDecimal(t, "12", got.TotalCost, "costo")
	assertDecimal(t, "8", got.TotalProfit, "utilidad")
	assertDecimal(t, "40", got.ProfitMargin, "margen %")
	assert.Equal(t, 0, got.SkippedLineItems)

	require.Len(t, got.TopProfitableProducts, 1)
	assert.Equal(t, "item-1", got.TopProfitableProducts[0].ItemID)
	assert.Equal(t, 2, got.TopProfitableProducts[0].Units)
}

// Sin ingresos el margen es 0 por guard de división, no NaN ni panic.
func TestProfitAnalytics_SinIngresos_Margen0(t *testing.T) {
	invoices := []entity.Invoice{
		invoice("1", entity.InvoiceStatusPending, "999", ts(t, "2024-06-01T10:00:00Z"),
			line("item-1", "Café", 1, "999")),
	}
	items := []entity.InventoryItem{item("item-1", "Café", 10, 2, "6")}

	got := analytics.ProfitAnalytics(invoices, items)

	assertDecimal(t, "0", got.TotalRevenue, "ingresos")
	assertDecimal(t, "0", got.ProfitMargin, "margen")
	require.NotNil(t, got.TopProfitableProducts)
	assert.Empty(t, got.TopProfitableProducts)
}

// Una línea cuyo producto ya no existe en inventario se omite del cálculo,
// pero la omisión queda contada para que no pase en silencio.
func TestProfitAnalytics_LineaSinProducto_SeOmiteYCuenta(t *testing.T) {
	invoices := []entity.Invoice{
		paid("1", "50", ts(t, "2024-06-01T10:00:00Z"),
			line("item-1", "Café", 2, "20"),
			line("item-borrado", "Fantasma", 3, "30")),
	}
	items := []entity.InventoryItem{item("item-1", "Café", 10, 2, "6")}

	got := analytics.ProfitAnalytics(invoices, items)

	assert.Equal(t, 1, got.SkippedLineItems, "la línea huérfana debe contarse")
	assertDecimal(t, "20", got.TotalRevenue, "solo la línea con producto suma")
	assertDecimal(t, "12", got.TotalCost, "costo")
	require.Len(t, got.TopProfitableProducts, 1)
}

// El reporte por producto entrega los 10 más rentables, ordenados por utilidad.
func TestProfitAnalytics_Top10PorUtilidad(t *testing.T) {
	day := ts(t, "2024-06-01T10:00:00Z")
	var invoices []entity.Invoice
	var items []entity.InventoryItem
	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("item-%d", i)
		// utilidad creciente: el item-12 es el más rentable
		total := fmt.Sprintf("%d", i*10)
		invoices = append(invoices, paid(id, total, day, line(id, id, 1, total)))
		items = append(items, item(id, id, 10, 2, "0"))
	}

	got := analytics.ProfitAnalytics(invoices, items)

	require.Len(t, got.TopProfitableProducts, 10)
	assert.Equal(t, "item-12", got.TopProfitableProducts[0].ItemID)
	assert.Equal(t, "item-3", got.TopProfitableProducts[9].ItemID,
		"los dos menos rentables quedan fuera")
}
