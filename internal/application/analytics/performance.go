package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// SalesPerformance acumula ventas pagadas por ventana temporal contra el
// "ahora" inyectado (ya convertido a la zona horaria de negocio).
//
// Ventanas: "hoy" va de la medianoche calendario al ahora; "ayer" es el día
// calendario anterior; "semana" y "mes" son 7×24h y 30×24h hacia atrás desde
// la medianoche de hoy, incluyendo hoy. GrowthRate compara hoy contra ayer y
// devuelve 0 cuando ayer no hubo ingresos (guard de división por cero
// documentado, no una tasa real en ese caso).
func SalesPerformance(invoices []entity.Invoice, now time.Time) dto.SalesPerformanceDTO {
	loc := now.Location()
	todayStart := dayStart(now, loc)
	yesterdayStart := todayStart.Add(-24 * time.Hour)
	weekStart := todayStart.Add(-7 * 24 * time.Hour)
	monthStart := todayStart.Add(-30 * 24 * time.Hour)

	var m dto.SalesPerformanceDTO

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		at := inv.CreatedAt

		if !at.Before(todayStart) {
			m.TodaySales = m.TodaySales.Add(inv.Total)
			m.TodayOrders++
		}
		if !at.Before(yesterdayStart) && at.Before(todayStart) {
			m.YesterdaySales = m.YesterdaySales.Add(inv.Total)
			m.YesterdayOrders++
		}
		if !at.Before(weekStart) {
			m.WeekSales = m.WeekSales.Add(inv.Total)
			m.WeekOrders++
		}
		if !at.Before(monthStart) {
			m.MonthSales = m.MonthSales.Add(inv.Total)
			m.MonthOrders++
		}
	}

	if m.TodayOrders > 0 {
		m.AvgOrderValue = m.TodaySales.DivRound(decimal.NewFromInt(int64(m.TodayOrders)), 2)
	}
	if m.YesterdaySales.IsPositive() {
		m.GrowthRate = m.TodaySales.Sub(m.YesterdaySales).
			Div(m.YesterdaySales).Mul(hundred).Round(2)
	}

	return m
}
