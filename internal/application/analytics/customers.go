package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

const (
	topCustomers = 5
	// newCustomerWindow: "nuevos este mes" es una ventana móvil de 30 días
	// desde el "ahora" inyectado, NO el mes calendario. El nombre viene de la
	// etiqueta del widget; el comportamiento es intencional.
	newCustomerWindow = 30 * 24 * time.Hour
)

// CustomerInsights agrupa facturas pagadas por identidad de cliente y deriva
// métricas de comportamiento.
//
// La identidad es el email, o el nombre si no hay email: clientes sin email
// también cuentan, a costa de fundir homónimos sin email (limitación conocida
// del modelo de datos, no se "corrige" aquí).
func CustomerInsights(invoices []entity.Invoice, now time.Time) dto.CustomerInsightsDTO {
	type customer struct {
		name       string
		email      string
		totalSpent decimal.Decimal
		orderCount int
		firstOrder time.Time
	}

	index := make(map[string]int)
	customers := []customer{}
	var totalRevenue decimal.Decimal

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		key := inv.CustomerEmail
		if key == "" {
			key = inv.CustomerName
		}

		i, ok := index[key]
		if !ok {
			i = len(customers)
			index[key] = i
			customers = append(customers, customer{
				name:       inv.CustomerName,
				email:      inv.CustomerEmail,
				firstOrder: inv.CreatedAt,
			})
		}
		customers[i].totalSpent = customers[i].totalSpent.Add(inv.Total)
		customers[i].orderCount++
		if inv.CreatedAt.Before(customers[i].firstOrder) {
			customers[i].firstOrder = inv.CreatedAt
		}
		totalRevenue = totalRevenue.Add(inv.Total)
	}

	result := dto.CustomerInsightsDTO{
		TotalCustomers: len(customers),
		TopCustomers:   []dto.TopCustomerDTO{},
	}

	windowStart := now.Add(-newCustomerWindow)
	for _, c := range customers {
		if c.orderCount > 1 {
			result.RepeatCustomers++
		}
		if !c.firstOrder.Before(windowStart) {
			result.NewThisMonth++
		}
	}

	ranked := make([]customer, len(customers))
	copy(ranked, customers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].totalSpent.GreaterThan(ranked[j].totalSpent)
	})
	if len(ranked) > topCustomers {
		ranked = ranked[:topCustomers]
	}
	for _, c := range ranked {
		result.TopCustomers = append(result.TopCustomers, dto.TopCustomerDTO{
			Name:       c.name,
			Email:      c.email,
			TotalSpent: c.totalSpent,
			OrderCount: c.orderCount,
		})
	}

	if result.TotalCustomers > 0 {
		count := decimal.NewFromInt(int64(result.TotalCustomers))
		result.AvgCustomerValue = totalRevenue.Div(count).Round(2)
		result.RepeatRate = decimal.NewFromInt(int64(result.RepeatCustomers)).
			Div(count).Mul(hundred).Round(2)
	}

	return result
}
