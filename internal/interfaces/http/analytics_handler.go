package http

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/application/dto"
)

// AnalyticsHandler maneja los endpoints de analítica detallada.
type AnalyticsHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetSalesData devuelve el ranking de ventas por producto.
// GET /api/analytics/sales
func (h *AnalyticsHandler) GetSalesData(c *fiber.Ctx) error {
	sales, err := h.uc.GetSalesData(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sales)
}

// ExportSalesCSV devuelve el ranking de ventas como CSV descargable.
// GET /api/analytics/sales/export
func (h *AnalyticsHandler) ExportSalesCSV(c *fiber.Ctx) error {
	sales, err := h.uc.GetSalesData(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	rows := [][]string{{"item_id", "item_name", "total_quantity", "total_revenue", "invoice_count"}}
	for _, s := range sales {
		rows = append(rows, []string{
			s.ItemID,
			s.ItemName,
			strconv.Itoa(s.TotalQuantity),
			s.TotalRevenue.StringFixed(2),
			strconv.Itoa(s.InvoiceCount),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales.csv"`)
	return c.Send(buf.Bytes())
}

// GetRevenueByDate devuelve los ingresos agrupados por día calendario.
// GET /api/analytics/revenue
func (h *AnalyticsHandler) GetRevenueByDate(c *fiber.Ctx) error {
	revenue, err := h.uc.GetRevenueByDate(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(revenue)
}

// GetRestockPredictions devuelve la proyección de agotamiento por producto.
// GET /api/analytics/restock
func (h *AnalyticsHandler) GetRestockPredictions(c *fiber.Ctx) error {
	predictions, err := h.uc.GetRestockPredictions(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(predictions)
}

// GetLowStockItems devuelve los productos en o bajo su nivel de reorden.
// GET /api/analytics/low-stock
func (h *AnalyticsHandler) GetLowStockItems(c *fiber.Ctx) error {
	items, err := h.uc.GetLowStockItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// GetSupplierAnalytics devuelve el desempeño por proveedor.
// GET /api/analytics/suppliers
//
// Con ?limit=N devuelve solo los primeros N por gasto (el widget de top
// proveedores usa limit=5).
func (h *AnalyticsHandler) GetSupplierAnalytics(c *fiber.Ctx) error {
	rawLimit := c.Query("limit")
	if rawLimit == "" {
		ranked, err := h.uc.GetSupplierAnalytics(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ranked)
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: "limit debe ser un entero positivo",
		})
	}
	ranked, err := h.uc.GetTopSuppliers(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ranked)
}

// GetProfitAnalytics devuelve ingresos, costo y utilidad por producto.
// GET /api/analytics/profit
//
// Protegido con RequireRole(admin, manager): expone precios de costo.
func (h *AnalyticsHandler) GetProfitAnalytics(c *fiber.Ctx) error {
	profit, err := h.uc.GetProfitAnalytics(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profit)
}
