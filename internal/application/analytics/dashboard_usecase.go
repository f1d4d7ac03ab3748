package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
	"github.com/jhoicas/insights-api/internal/domain/repository"
	"github.com/jhoicas/insights-api/pkg/config"
)

// DashboardUseCase orquesta cada vista del dashboard: descarga los snapshots
// que la vista necesita (en paralelo cuando son varios), corre el motor de
// agregación y devuelve el DTO.
//
// No hay caché entre llamadas: cada navegación del frontend dispara un fetch
// y un recálculo completos sobre datos frescos. Si cualquier fetch de una
// vista falla, la vista completa falla y el error sube al handler; nunca se
// agrega sobre datos parciales a nivel de fetch.
type DashboardUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	inventoryRepo repository.InventoryRepository
	supplierRepo  repository.SupplierRepository
	orderRepo     repository.PurchaseOrderRepository

	loc          *time.Location // zona horaria de negocio para días calendario
	topSuppliers int
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(
	invoiceRepo repository.InvoiceRepository,
	inventoryRepo repository.InventoryRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
	cfg config.DashboardConfig,
) *DashboardUseCase {
	top := cfg.TopSuppliers
	if top <= 0 {
		top = 5
	}
	return &DashboardUseCase{
		invoiceRepo:   invoiceRepo,
		inventoryRepo: inventoryRepo,
		supplierRepo:  supplierRepo,
		orderRepo:     orderRepo,
		loc:           cfg.Location(),
		topSuppliers:  top,
		now:           time.Now,
	}
}

// SetClock reemplaza la fuente de "ahora"; para tests deterministas.
func (uc *DashboardUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// GetSummary devuelve las tarjetas de resumen (ingresos y facturas pagadas
// históricos, catálogo, bajo mínimo).
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (dto.DashboardSummaryDTO, error) {
	invoices, items, err := uc.fetchInvoicesAndInventory(ctx)
	if err != nil {
		return dto.DashboardSummaryDTO{}, err
	}
	return TotalStats(invoices, items), nil
}

// GetSalesData devuelve el ranking de ventas por producto.
func (uc *DashboardUseCase) GetSalesData(ctx context.Context) ([]dto.ProductSalesDTO, error) {
	invoices, err := uc.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", err)
	}
	return SalesByProduct(invoices), nil
}

// GetRevenueByDate devuelve los ingresos agrupados por día calendario.
func (uc *DashboardUseCase) GetRevenueByDate(ctx context.Context) ([]dto.RevenueByDateDTO, error) {
	invoices, err := uc.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", err)
	}
	return RevenueByDate(invoices, uc.loc), nil
}

// GetRestockPredictions devuelve la proyección de agotamiento por producto.
func (uc *DashboardUseCase) GetRestockPredictions(ctx context.Context) ([]dto.RestockPredictionDTO, error) {
	invoices, items, err := uc.fetchInvoicesAndInventory(ctx)
	if err != nil {
		return nil, err
	}
	return RestockPredictions(items, invoices), nil
}

// GetLowStockItems devuelve los productos en o bajo su nivel de reorden.
func (uc *DashboardUseCase) GetLowStockItems(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	items, err := uc.inventoryRepo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: inventario: %w", err)
	}
	return LowStockItems(items), nil
}

// GetSupplierAnalytics devuelve el desempeño de todos los proveedores.
func (uc *DashboardUseCase) GetSupplierAnalytics(ctx context.Context) ([]dto.SupplierAnalyticsDTO, error) {
	suppliers, orders, err := uc.fetchProcurement(ctx)
	if err != nil {
		return nil, err
	}
	return SupplierAnalytics(suppliers, orders), nil
}

// GetTopSuppliers devuelve los primeros limit proveedores por gasto;
// limit <= 0 usa el configurado.
func (uc *DashboardUseCase) GetTopSuppliers(ctx context.Context, limit int) ([]dto.SupplierAnalyticsDTO, error) {
	if limit <= 0 {
		limit = uc.topSuppliers
	}
	suppliers, orders, err := uc.fetchProcurement(ctx)
	if err != nil {
		return nil, err
	}
	return TopSuppliers(suppliers, orders, limit), nil
}

// GetProfitAnalytics devuelve ingresos, costo y utilidad globales y por producto.
func (uc *DashboardUseCase) GetProfitAnalytics(ctx context.Context) (dto.ProfitAnalyticsDTO, error) {
	invoices, items, err := uc.fetchInvoicesAndInventory(ctx)
	if err != nil {
		return dto.ProfitAnalyticsDTO{}, err
	}
	return ProfitAnalytics(invoices, items), nil
}

// GetCustomerInsights devuelve las métricas de comportamiento de clientes.
func (uc *DashboardUseCase) GetCustomerInsights(ctx context.Context) (dto.CustomerInsightsDTO, error) {
	invoices, err := uc.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return dto.CustomerInsightsDTO{}, fmt.Errorf("dashboard: facturas: %w", err)
	}
	return CustomerInsights(invoices, uc.now().In(uc.loc)), nil
}

// GetSalesPerformance devuelve las ventas por ventana temporal (hoy, ayer,
// semana, mes) contra el reloj del caso de uso.
func (uc *DashboardUseCase) GetSalesPerformance(ctx context.Context) (dto.SalesPerformanceDTO, error) {
	invoices, err := uc.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return dto.SalesPerformanceDTO{}, fmt.Errorf("dashboard: facturas: %w", err)
	}
	return SalesPerformance(invoices, uc.now().In(uc.loc)), nil
}

// fetchInvoicesAndInventory descarga facturas e inventario en paralelo;
// barrera "esperar ambos y luego computar": el primer error aborta la vista.
func (uc *DashboardUseCase) fetchInvoicesAndInventory(ctx context.Context) ([]entity.Invoice, []entity.InventoryItem, error) {
	type invoicesResult struct {
		invoices []entity.Invoice
		err      error
	}
	type itemsResult struct {
		items []entity.InventoryItem
		err   error
	}

	invCh := make(chan invoicesResult, 1)
	itemCh := make(chan itemsResult, 1)

	go func() {
		invoices, err := uc.invoiceRepo.ListInvoices(ctx)
		invCh <- invoicesResult{invoices, err}
	}()
	go func() {
		items, err := uc.inventoryRepo.ListItems(ctx)
		itemCh <- itemsResult{items, err}
	}()

	inv := <-invCh
	it := <-itemCh

	if inv.err != nil {
		return nil, nil, fmt.Errorf("dashboard: facturas: %w", inv.err)
	}
	if it.err != nil {
		return nil, nil, fmt.Errorf("dashboard: inventario: %w", it.err)
	}
	return inv.invoices, it.items, nil
}

// fetchProcurement descarga proveedores y órdenes de compra en paralelo.
func (uc *DashboardUseCase) fetchProcurement(ctx context.Context) ([]entity.Supplier, []entity.PurchaseOrder, error) {
	type suppliersResult struct {
		suppliers []entity.Supplier
		err       error
	}
	type ordersResult struct {
		orders []entity.PurchaseOrder
		err    error
	}

	supCh := make(chan suppliersResult, 1)
	ordCh := make(chan ordersResult, 1)

	go func() {
		suppliers, err := uc.supplierRepo.ListSuppliers(ctx)
		supCh <- suppliersResult{suppliers, err}
	}()
	go func() {
		orders, err := uc.orderRepo.ListPurchaseOrders(ctx)
		ordCh <- ordersResult{orders, err}
	}()

	sup := <-supCh
	ord := <-ordCh

	if sup.err != nil {
		return nil, nil, fmt.Errorf("dashboard: proveedores: %w", sup.err)
	}
	if ord.err != nil {
		return nil, nil, fmt.Errorf("dashboard: órdenes de compra: %w", ord.err)
	}
	return sup.suppliers, ord.orders, nil
}
