package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/insights-api/internal/application/analytics"
	"github.com/jhoicas/insights-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *appanalytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
// Todo el API es de solo lectura: el CRUD de las entidades vive en el backend
// de gestión y el frontend le habla directo; aquí solo se sirven agregados.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard: widgets principales (todos los roles)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/performance", dashboardHandler.GetSalesPerformance)
	dashboard.Get("/customers", dashboardHandler.GetCustomerInsights)

	// Analítica detallada
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.DashboardUC)
	analytics.Get("/sales", analyticsHandler.GetSalesData)
	analytics.Get("/sales/export", analyticsHandler.ExportSalesCSV)
	analytics.Get("/revenue", analyticsHandler.GetRevenueByDate)
	analytics.Get("/restock", analyticsHandler.GetRestockPredictions)
	analytics.Get("/low-stock", analyticsHandler.GetLowStockItems)
	analytics.Get("/suppliers", analyticsHandler.GetSupplierAnalytics)

	// Utilidad expone precios de costo: solo admin y manager
	analytics.Get("/profit",
		RequireRole(jwt.RoleAdmin, jwt.RoleManager),
		analyticsHandler.GetProfitAnalytics)
}
