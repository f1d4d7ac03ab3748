package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las tarjetas de resumen del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_revenue, total_invoices,
// total_products, low_stock_count). Recalculado en cada llamada sobre un
// snapshot fresco del backend; no hay caché.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetSalesPerformance devuelve las ventas por ventana temporal.
// GET /api/dashboard/performance
func (h *DashboardHandler) GetSalesPerformance(c *fiber.Ctx) error {
	metrics, err := h.uc.GetSalesPerformance(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(metrics)
}

// GetCustomerInsights devuelve las métricas de comportamiento de clientes.
// GET /api/dashboard/customers
func (h *DashboardHandler) GetCustomerInsights(c *fiber.Ctx) error {
	insights, err := h.uc.GetCustomerInsights(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(insights)
}

// respondError mapea errores del caso de uso a respuestas HTTP.
// Un fallo del backend de datos es 502: el dashboard no puede computar esa
// vista y el frontend muestra su mensaje genérico de carga fallida.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_ERROR", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
