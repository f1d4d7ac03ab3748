// Package analytics contiene el motor de agregación del dashboard: funciones
// puras que transforman snapshots de entidades (recién descargados del
// backend) en métricas derivadas. Nada aquí lee el reloj del sistema ni
// estado global: el "ahora" llega como parámetro y cada llamada opera sobre
// su propio snapshot, así que dos llamadas con el mismo input producen
// exactamente el mismo output.
package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// SalesByProduct acumula ventas por producto sobre las facturas pagadas,
// ordenadas por revenue descendente. A igual revenue se conserva el orden de
// primera aparición (sort estable sobre acumulación en orden de entrada).
func SalesByProduct(invoices []entity.Invoice) []dto.ProductSalesDTO {
	index := make(map[string]int)
	out := []dto.ProductSalesDTO{}

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		for _, item := range inv.Items {
			i, ok := index[item.InventoryItemID]
			if !ok {
				i = len(out)
				index[item.InventoryItemID] = i
				out = append(out, dto.ProductSalesDTO{
					ItemID:   item.InventoryItemID,
					ItemName: item.Name,
				})
			}
			out[i].TotalQuantity += item.Quantity
			out[i].TotalRevenue = out[i].TotalRevenue.Add(item.Total)
			out[i].InvoiceCount++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	return out
}

// RevenueByDate agrupa los ingresos de facturas pagadas por día calendario en
// la zona horaria de negocio, ascendente cronológicamente. Se ordena por el
// instante del día, no por el string, para evitar bugs de formato entre meses.
func RevenueByDate(invoices []entity.Invoice, loc *time.Location) []dto.RevenueByDateDTO {
	type bucket struct {
		day time.Time
		dto dto.RevenueByDateDTO
	}
	index := make(map[time.Time]int)
	buckets := []bucket{}

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		day := dayStart(inv.CreatedAt, loc)
		i, ok := index[day]
		if !ok {
			i = len(buckets)
			index[day] = i
			buckets = append(buckets, bucket{day: day, dto: dto.RevenueByDateDTO{Date: day.Format("2006-01-02")}})
		}
		buckets[i].dto.Revenue = buckets[i].dto.Revenue.Add(inv.Total)
		buckets[i].dto.Invoices++
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].day.Before(buckets[j].day)
	})

	out := make([]dto.RevenueByDateDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.dto)
	}
	return out
}

// TotalStats construye las tarjetas de resumen del dashboard.
func TotalStats(invoices []entity.Invoice, items []entity.InventoryItem) dto.DashboardSummaryDTO {
	summary := dto.DashboardSummaryDTO{TotalProducts: len(items)}

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		summary.TotalRevenue = summary.TotalRevenue.Add(inv.Total)
		summary.TotalInvoices++
	}
	for _, it := range items {
		if it.IsLowStock() {
			summary.LowStockCount++
		}
	}
	return summary
}

// dayStart trunca un instante a la medianoche del día calendario en loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
