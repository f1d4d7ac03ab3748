package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/domain/entity"
	"github.com/jhoicas/insights-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices []entity.Invoice
	err      error
}

func (f *fakeInvoiceRepo) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return f.invoices, f.err
}

type fakeInventoryRepo struct {
	items []entity.InventoryItem
	err   error
}

func (f *fakeInventoryRepo) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	return f.items, f.err
}

type fakeSupplierRepo struct {
	suppliers []entity.Supplier
	err       error
}

func (f *fakeSupplierRepo) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return f.suppliers, f.err
}

type fakeOrderRepo struct {
	orders []entity.PurchaseOrder
	err    error
}

func (f *fakeOrderRepo) ListPurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return f.orders, f.err
}

func newTestUseCase(inv *fakeInvoiceRepo, items *fakeInventoryRepo, sup *fakeSupplierRepo, ord *fakeOrderRepo) *analytics.DashboardUseCase {
	if inv == nil {
		inv = &fakeInvoiceRepo{}
	}
	if items == nil {
		items = &fakeInventoryRepo{}
	}
	if sup == nil {
		sup = &fakeSupplierRepo{}
	}
	if ord == nil {
		ord = &fakeOrderRepo{}
	}
	return analytics.NewDashboardUseCase(inv, items, sup, ord,
		config.DashboardConfig{Timezone: "UTC", TopSuppliers: 5})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardUseCase_GetSummary(t *testing.T) {
	day := ts(t, "2024-06-01T10:00:00Z")
	uc := newTestUseCase(
		&fakeInvoiceRepo{invoices: []entity.Invoice{
			paid("1", "100", day),
			invoice("2", entity.InvoiceStatusPending, "50", day),
		}},
		&fakeInventoryRepo{items: []entity.InventoryItem{
			item("item-1", "Café", 2, 5, "0"),
			item("item-2", "Té", 10, 5, "0"),
		}},
		nil, nil,
	)

	got, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assertDecimal(t, "100", got.TotalRevenue, "solo la pagada suma")
	assert.Equal(t, 1, got.TotalInvoices)
	assert.Equal(t, 2, got.TotalProducts)
	assert.Equal(t, 1, got.LowStockCount)
}

// Si cualquier fetch de la vista falla, la vista completa falla: nunca se
// agrega sobre datos parciales.
func TestDashboardUseCase_FetchFalla_PropagaError(t *testing.T) {
	errBackend := errors.New("backend caído")

	t.Run("facturas", func(t *testing.T) {
		uc := newTestUseCase(&fakeInvoiceRepo{err: errBackend}, nil, nil, nil)
		_, err := uc.GetSummary(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, errBackend, "el error original debe poder inspeccionarse")
	})

	t.Run("inventario", func(t *testing.T) {
		uc := newTestUseCase(nil, &fakeInventoryRepo{err: errBackend}, nil, nil)
		_, err := uc.GetProfitAnalytics(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, errBackend)
	})

	t.Run("proveedores", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, &fakeSupplierRepo{err: errBackend}, nil)
		_, err := uc.GetSupplierAnalytics(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, errBackend)
	})

	t.Run("órdenes de compra", func(t *testing.T) {
		uc := newTestUseCase(nil, nil, nil, &fakeOrderRepo{err: errBackend})
		_, err := uc.GetTopSuppliers(context.Background(), 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, errBackend)
	})
}

// Con el reloj congelado dos llamadas devuelven exactamente lo mismo.
func TestDashboardUseCase_SetClock_Determinista(t *testing.T) {
	frozen := ts(t, "2024-06-15T18:00:00Z")
	uc := newTestUseCase(
		&fakeInvoiceRepo{invoices: []entity.Invoice{
			paid("1", "90", ts(t, "2024-06-15T09:00:00Z")),
			paid("2", "100", ts(t, "2024-06-14T12:00:00Z")),
		}},
		nil, nil, nil,
	)
	uc.SetClock(func() time.Time { return frozen })

	a, err := uc.GetSalesPerformance(context.Background())
	require.NoError(t, err)
	b, err := uc.GetSalesPerformance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assertDecimal(t, "90", a.TodaySales, "hoy según el reloj congelado")
	assertDecimal(t, "100", a.YesterdaySales, "ayer según el reloj congelado")
}

// limit <= 0 usa el límite configurado.
func TestDashboardUseCase_GetTopSuppliers_LimiteDefault(t *testing.T) {
	day := ts(t, "2024-05-01T00:00:00Z")
	sup := &fakeSupplierRepo{suppliers: []entity.Supplier{
		supplier("s1", "A"), supplier("s2", "B"), supplier("s3", "C"),
	}}
	ord := &fakeOrderRepo{orders: []entity.PurchaseOrder{
		order("1", "s1", "A", entity.PurchaseOrderStatusReceived, "10", day),
		order("2", "s2", "B", entity.PurchaseOrderStatusReceived, "30", day),
		order("3", "s3", "C", entity.PurchaseOrderStatusReceived, "20", day),
	}}
	uc := analytics.NewDashboardUseCase(&fakeInvoiceRepo{}, &fakeInventoryRepo{}, sup, ord,
		config.DashboardConfig{Timezone: "UTC", TopSuppliers: 2})

	got, err := uc.GetTopSuppliers(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, got, 2, "limit 0 debe caer al configurado")
	assert.Equal(t, "s2", got[0].SupplierID)
}

// El reloj del caso de uso se convierte a la zona horaria de negocio antes de
// truncar "hoy": 03:00 UTC es el día anterior para un negocio en UTC-5.
func TestDashboardUseCase_ZonaHorariaDeNegocio(t *testing.T) {
	frozen := ts(t, "2024-06-15T03:00:00Z") // 14 de junio 22:00 en UTC-5
	uc := analytics.NewDashboardUseCase(
		&fakeInvoiceRepo{invoices: []entity.Invoice{
			// 14 de junio 18:00 en UTC-5: mismo día de negocio que el "ahora";
			// en UTC habría caído en ayer
			paid("1", "70", ts(t, "2024-06-14T23:00:00Z")),
		}},
		&fakeInventoryRepo{}, &fakeSupplierRepo{}, &fakeOrderRepo{},
		config.DashboardConfig{Timezone: "Etc/GMT+5", TopSuppliers: 5},
	)
	uc.SetClock(func() time.Time { return frozen })

	got, err := uc.GetSalesPerformance(context.Background())
	require.NoError(t, err)

	assertDecimal(t, "70", got.TodaySales,
		"para el negocio en UTC-5 la venta es de hoy, no de ayer")
	assert.Equal(t, 1, got.TodayOrders)
}
