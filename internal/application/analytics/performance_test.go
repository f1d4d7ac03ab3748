package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests SalesPerformance
// ──────────────────────────────────────────────────────────────────────────────

// Cada factura cae en las ventanas que la contienen: una de hoy suma a hoy,
// semana y mes; una de hace 20 días solo al mes; una de hace 45 a ninguna.
func TestSalesPerformance_VentanasTemporales(t *testing.T) {
	now := ts(t, "2024-06-15T18:00:00Z")
	invoices := []entity.Invoice{
		paid("hoy", "100", ts(t, "2024-06-15T10:00:00Z")),
		paid("ayer", "80", ts(t, "2024-06-14T22:00:00Z")),
		paid("semana", "60", ts(t, "2024-06-10T10:00:00Z")),
		paid("mes", "40", ts(t, "2024-05-26T10:00:00Z")),
		paid("antiguo", "999", ts(t, "2024-05-01T10:00:00Z")),
		invoice("pendiente-hoy", entity.InvoiceStatusPending, "500", ts(t, "2024-06-15T11:00:00Z")),
	}

	got := analytics.SalesPerformance(invoices, now)

	assertDecimal(t, "100", got.TodaySales, "hoy")
	assert.Equal(t, 1, got.TodayOrders)
	assertDecimal(t, "80", got.YesterdaySales, "ayer")
	assert.Equal(t, 1, got.YesterdayOrders)
	assertDecimal(t, "240", got.WeekSales, "hoy + ayer + hace 5 días")
	assert.Equal(t, 3, got.WeekOrders)
	assertDecimal(t, "280", got.MonthSales, "todo menos la de hace 45 días")
	assert.Equal(t, 4, got.MonthOrders)
}

// GrowthRate compara hoy contra ayer; AvgOrderValue es el ticket promedio de hoy.
func TestSalesPerformance_GrowthRateYTicketPromedio(t *testing.T) {
	now := ts(t, "2024-06-15T18:00:00Z")
	invoices := []entity.Invoice{
		paid("1", "90", ts(t, "2024-06-15T09:00:00Z")),
		paid("2", "60", ts(t, "2024-06-15T14:00:00Z")),
		paid("3", "100", ts(t, "2024-06-14T12:00:00Z")),
	}

	got := analytics.SalesPerformance(invoices, now)

	assertDecimal(t, "75", got.AvgOrderValue, "150 de hoy / 2 órdenes")
	assertDecimal(t, "50", got.GrowthRate, "(150-100)/100 = 50%")
}

// Sin ventas ayer la tasa es 0 por guard de división, no infinito.
func TestSalesPerformance_AyerSinVentas_Growth0(t *testing.T) {
	now := ts(t, "2024-06-15T18:00:00Z")
	invoices := []entity.Invoice{
		paid("1", "100", ts(t, "2024-06-15T09:00:00Z")),
	}

	got := analytics.SalesPerformance(invoices, now)

	assertDecimal(t, "0", got.GrowthRate, "sin base de comparación la tasa queda en 0")
}

// La medianoche de hoy parte las ventanas: 23:59 de ayer es ayer, 00:00 es hoy.
func TestSalesPerformance_CorteEnMedianoche(t *testing.T) {
	now := ts(t, "2024-06-15T01:00:00Z")
	invoices := []entity.Invoice{
		paid("1", "10", ts(t, "2024-06-14T23:59:00Z")),
		paid("2", "20", ts(t, "2024-06-15T00:00:00Z")),
	}

	got := analytics.SalesPerformance(invoices, now)

	assertDecimal(t, "20", got.TodaySales, "00:00 en punto ya es hoy")
	assertDecimal(t, "10", got.YesterdaySales, "23:59 todavía es ayer")
}

// Mismo snapshot y mismo "ahora" producen exactamente el mismo resultado.
func TestSalesPerformance_DeterministaConRelojFijo(t *testing.T) {
	now := ts(t, "2024-06-15T18:00:00Z")
	invoices := []entity.Invoice{
		paid("1", "90", ts(t, "2024-06-15T09:00:00Z")),
		paid("2", "100", ts(t, "2024-06-14T12:00:00Z")),
	}

	a := analytics.SalesPerformance(invoices, now)
	b := analytics.SalesPerformance(invoices, now)

	assert.Equal(t, a, b)
}
