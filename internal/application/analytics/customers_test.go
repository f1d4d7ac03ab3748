package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

func custInvoice(id, name, email, total string, createdAt time.Time) entity.Invoice {
	inv := paid(id, total, createdAt)
	inv.CustomerName = name
	inv.CustomerEmail = email
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CustomerInsights
// ──────────────────────────────────────────────────────────────────────────────

// La identidad de cliente es el email; sin email cae al nombre. Dos facturas
// con el mismo email son un cliente aunque el nombre venga escrito distinto.
func TestCustomerInsights_IdentidadPorEmailLuegoNombre(t *testing.T) {
	now := ts(t, "2024-06-15T12:00:00Z")
	invoices := []entity.Invoice{
		custInvoice("1", "Ana Pérez", "ana@example.com", "100", ts(t, "2024-06-01T10:00:00Z")),
		custInvoice("2", "Ana P.", "ana@example.com", "50", ts(t, "2024-06-10T10:00:00Z")),
		custInvoice("3", "Cliente Mostrador", "", "30", ts(t, "2024-06-05T10:00:00Z")),
		custInvoice("4", "Cliente Mostrador", "", "20", ts(t, "2024-06-06T10:00:00Z")),
	}

	got := analytics.CustomerInsights(invoices, now)

	assert.Equal(t, 2, got.TotalCustomers,
		"mismo email = un cliente; mismo nombre sin email = un cliente")
	assert.Equal(t, 2, got.RepeatCustomers, "ambos tienen más de una orden")

	require.Len(t, got.TopCustomers, 2)
	assert.Equal(t, "ana@example.com", got.TopCustomers[0].Email)
	assertDecimal(t, "150", got.TopCustomers[0].TotalSpent, "gasto de Ana")
	assert.Equal(t, 2, got.TopCustomers[0].OrderCount)
}

// "Nuevos este mes" es una ventana móvil de 30 días contra el ahora inyectado,
// medida sobre la PRIMERA orden del cliente.
func TestCustomerInsights_NuevosVentanaMovil30Dias(t *testing.T) {
	now := ts(t, "2024-06-15T12:00:00Z")
	invoices := []entity.Invoice{
		// primera orden hace 40 días, repite hace 5: es recurrente, no nuevo
		custInvoice("1", "Vieja", "vieja@example.com", "10", ts(t, "2024-05-06T10:00:00Z")),
		custInvoice("2", "Vieja", "vieja@example.com", "10", ts(t, "2024-06-10T10:00:00Z")),
		// primera orden hace 10 días: nuevo
		custInvoice("3", "Nueva", "nueva@example.com", "10", ts(t, "2024-06-05T10:00:00Z")),
	}

	got := analytics.CustomerInsights(invoices, now)

	assert.Equal(t, 1, got.NewThisMonth,
		"solo cuenta como nuevo quien hizo su primera orden dentro de la ventana")
}

// AvgCustomerValue = ingresos / clientes; RepeatRate = recurrentes / clientes.
func TestCustomerInsights_PromedioYTasaDeRecurrencia(t *testing.T) {
	now := ts(t, "2024-06-15T12:00:00Z")
	invoices := []entity.Invoice{
		custInvoice("1", "A", "a@example.com", "100", ts(t, "2024-06-01T10:00:00Z")),
		custInvoice("2", "A", "a@example.com", "50", ts(t, "2024-06-02T10:00:00Z")),
		custInvoice("3", "B", "b@example.com", "50", ts(t, "2024-06-03T10:00:00Z")),
	}

	got := analytics.CustomerInsights(invoices, now)

	assertDecimal(t, "100", got.AvgCustomerValue, "200 de ingresos / 2 clientes")
	assertDecimal(t, "50", got.RepeatRate, "1 de 2 clientes repite = 50%")
}

// El ranking entrega como máximo 5 clientes, por gasto descendente.
func TestCustomerInsights_Top5PorGasto(t *testing.T) {
	now := ts(t, "2024-06-15T12:00:00Z")
	var invoices []entity.Invoice
	for i := 1; i <= 6; i++ {
		email := fmt.Sprintf("c%d@example.com", i)
		total := fmt.Sprintf("%d", i*10)
		invoices = append(invoices,
			custInvoice(fmt.Sprintf("%d", i), email, email, total, ts(t, "2024-06-01T10:00:00Z")))
	}

	got := analytics.CustomerInsights(invoices, now)

	assert.Equal(t, 6, got.TotalCustomers)
	require.Len(t, got.TopCustomers, 5)
	assert.Equal(t, "c6@example.com", got.TopCustomers[0].Email)
	assert.Equal(t, "c2@example.com", got.TopCustomers[4].Email)
}

// Las facturas no pagadas no crean clientes ni suman gasto.
func TestCustomerInsights_ExcluyeFacturasNoPagadas(t *testing.T) {
	now := ts(t, "2024-06-15T12:00:00Z")
	pending := custInvoice("1", "Ana", "ana@example.com", "100", ts(t, "2024-06-01T10:00:00Z"))
	pending.Status = entity.InvoiceStatusPending

	got := analytics.CustomerInsights([]entity.Invoice{pending}, now)

	assert.Equal(t, 0, got.TotalCustomers)
	assertDecimal(t, "0", got.AvgCustomerValue, "sin clientes el promedio queda en 0")
	assertDecimal(t, "0", got.RepeatRate, "sin clientes la tasa queda en 0")
	require.NotNil(t, got.TopCustomers)
	assert.Empty(t, got.TopCustomers)
}
