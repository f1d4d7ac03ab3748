package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Tarjetas principales del dashboard: ingresos y facturas pagadas históricos,
// tamaño del catálogo y productos bajo mínimo.
type DashboardSummaryDTO struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalInvoices int             `json:"total_invoices"` // solo facturas pagadas
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
}
