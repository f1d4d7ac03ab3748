package dto

import "github.com/shopspring/decimal"

// ── Ventas por producto ───────────────────────────────────────────────────────

// ProductSalesDTO ventas acumuladas de un producto sobre facturas pagadas.
// El ranking se ordena por TotalRevenue descendente; a igual revenue se
// conserva el orden de primera aparición en el snapshot.
type ProductSalesDTO struct {
	ItemID        string          `json:"item_id"`
	ItemName      string          `json:"item_name"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	InvoiceCount  int             `json:"invoice_count"` // líneas de factura que aportaron (no facturas distintas)
}

// ── Ingresos por fecha ────────────────────────────────────────────────────────

// RevenueByDateDTO ingresos de un día calendario (zona horaria de negocio).
// Date usa formato ISO "2006-01-02": el orden cronológico coincide con el
// lexicográfico y no hay ambigüedad de formato entre meses.
type RevenueByDateDTO struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Invoices int             `json:"invoices"`
}

// ── Reposición ────────────────────────────────────────────────────────────────

// RestockPredictionDTO proyección de agotamiento de un producto.
// DaysUntilStockout == 999 significa "no computable" (sin velocidad de venta);
// se trata como "nunca" salvo que el stock ya esté bajo el mínimo.
type RestockPredictionDTO struct {
	ItemID            string          `json:"item_id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Category          string          `json:"category"`
	Stock             int             `json:"stock"`
	MinStock          int             `json:"min_stock"`
	AvgDailySales     decimal.Decimal `json:"avg_daily_sales"` // unidades/día, 2 decimales
	DaysUntilStockout int             `json:"days_until_stockout"`
	NeedsRestock      bool            `json:"needs_restock"`
}

// LowStockItemDTO producto en o por debajo de su nivel de reorden.
type LowStockItemDTO struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Stock     int             `json:"stock"`
	MinStock  int             `json:"min_stock"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierAnalyticsDTO desempeño de un proveedor según sus órdenes de compra.
type SupplierAnalyticsDTO struct {
	SupplierID      string          `json:"supplier_id"`
	Name            string          `json:"name"`
	TotalOrders     int             `json:"total_orders"`
	TotalSpend      decimal.Decimal `json:"total_spend"`
	ReceivedOrders  int             `json:"received_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CancelledOrders int             `json:"cancelled_orders"`
	Reliability     int             `json:"reliability"`     // % de órdenes recibidas; 0 si no tiene órdenes
	LastOrderDate   string          `json:"last_order_date"` // "2006-01-02"; vacío si nunca ordenó
}

// ── Utilidad ──────────────────────────────────────────────────────────────────

// ProductProfitDTO utilidad acumulada de un producto.
type ProductProfitDTO struct {
	ItemID  string          `json:"item_id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
	Units   int             `json:"units"`
}

// ProfitAnalyticsDTO utilidad global sobre facturas pagadas.
// SkippedLineItems cuenta las líneas omitidas por referenciar productos que
// ya no existen en inventario: la omisión es política deliberada, pero el
// contador la hace observable para callers y tests.
type ProfitAnalyticsDTO struct {
	TotalRevenue          decimal.Decimal    `json:"total_revenue"`
	TotalCost             decimal.Decimal    `json:"total_cost"`
	TotalProfit           decimal.Decimal    `json:"total_profit"`
	ProfitMargin          decimal.Decimal    `json:"profit_margin"` // %, 0 si no hay ingresos
	TopProfitableProducts []ProductProfitDTO `json:"top_profitable_products"`
	SkippedLineItems      int                `json:"skipped_line_items"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// TopCustomerDTO cliente rankeado por gasto acumulado.
type TopCustomerDTO struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	OrderCount int             `json:"order_count"`
}

// CustomerInsightsDTO métricas de comportamiento de clientes (facturas pagadas).
// La identidad de cliente es el email, o el nombre si no hay email: dos
// clientes homónimos sin email se funden en uno — limitación conocida del
// modelo, no un bug a corregir en silencio.
type CustomerInsightsDTO struct {
	TotalCustomers   int              `json:"total_customers"`
	NewThisMonth     int              `json:"new_this_month"` // ventana móvil de 30 días, no mes calendario
	RepeatCustomers  int              `json:"repeat_customers"`
	TopCustomers     []TopCustomerDTO `json:"top_customers"`
	AvgCustomerValue decimal.Decimal  `json:"avg_customer_value"`
	RepeatRate       decimal.Decimal  `json:"repeat_rate"` // %, 0 si no hay clientes
}

// ── Desempeño de ventas ───────────────────────────────────────────────────────

// SalesPerformanceDTO ventas por ventana temporal contra el "ahora" inyectado.
// GrowthRate es 0 cuando ayer no hubo ingresos: es un guard documentado contra
// la división por cero, no una tasa de crecimiento real en ese caso.
type SalesPerformanceDTO struct {
	TodaySales      decimal.Decimal `json:"today_sales"`
	YesterdaySales  decimal.Decimal `json:"yesterday_sales"`
	WeekSales       decimal.Decimal `json:"week_sales"`  // últimos 7×24h desde la medianoche de hoy
	MonthSales      decimal.Decimal `json:"month_sales"` // últimos 30×24h desde la medianoche de hoy
	TodayOrders     int             `json:"today_orders"`
	YesterdayOrders int             `json:"yesterday_orders"`
	WeekOrders      int             `json:"week_orders"`
	MonthOrders     int             `json:"month_orders"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"` // de hoy; 0 sin órdenes hoy
	GrowthRate      decimal.Decimal `json:"growth_rate"`     // % hoy vs ayer
}
