package analytics

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

const (
	// stockoutSentinelDays marca "no computable": sin velocidad de venta no
	// hay proyección de agotamiento. Se trata como "nunca" salvo que el stock
	// ya esté en o bajo el mínimo.
	stockoutSentinelDays = 999
	// restockThresholdDays días de cobertura bajo los cuales se sugiere reponer.
	restockThresholdDays = 30
)

// RestockPredictions proyecta el agotamiento de cada producto según su
// velocidad de venta.
//
// El denominador (días observados) se calcula sobre TODAS las facturas, en
// cualquier estado: el rango de fechas mide el período de observación, no las
// ventas. Las unidades vendidas, en cambio, solo cuentan facturas pagadas.
// Con velocidad cero la división se cortocircuita al sentinela en lugar de
// producir infinito.
func RestockPredictions(items []entity.InventoryItem, invoices []entity.Invoice) []dto.RestockPredictionDTO {
	days := decimal.NewFromInt(int64(daysCovered(invoices)))

	soldByProduct := make(map[string]int)
	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		for _, item := range inv.Items {
			soldByProduct[item.InventoryItemID] += item.Quantity
		}
	}

	out := make([]dto.RestockPredictionDTO, 0, len(items))
	for _, it := range items {
		avg := decimal.Zero
		if sold := soldByProduct[it.ID]; sold > 0 {
			avg = decimal.NewFromInt(int64(sold)).Div(days).Round(2)
		}

		daysOut := stockoutSentinelDays
		if avg.IsPositive() {
			daysOut = int(decimal.NewFromInt(int64(it.Stock)).Div(avg).IntPart())
		}

		out = append(out, dto.RestockPredictionDTO{
			ItemID:            it.ID,
			Name:              it.Name,
			SKU:               it.SKU,
			Category:          it.Category,
			Stock:             it.Stock,
			MinStock:          it.MinStock,
			AvgDailySales:     avg,
			DaysUntilStockout: daysOut,
			NeedsRestock:      daysOut < restockThresholdDays || it.IsLowStock(),
		})
	}
	return out
}

// LowStockItems filtra los productos en o bajo su nivel de reorden,
// ascendente por stock (los más críticos primero).
func LowStockItems(items []entity.InventoryItem) []dto.LowStockItemDTO {
	out := []dto.LowStockItemDTO{}
	for _, it := range items {
		if !it.IsLowStock() {
			continue
		}
		out = append(out, dto.LowStockItemDTO{
			ItemID:    it.ID,
			Name:      it.Name,
			SKU:       it.SKU,
			Category:  it.Category,
			Stock:     it.Stock,
			MinStock:  it.MinStock,
			SalePrice: it.SalePrice,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out
}

// daysCovered devuelve el período de observación en días: ceil del rango
// entre la factura más antigua y la más reciente, mínimo 1 (también cuando no
// hay facturas, para que el denominador nunca sea cero).
func daysCovered(invoices []entity.Invoice) int {
	if len(invoices) == 0 {
		return 1
	}
	oldest, newest := invoices[0].CreatedAt, invoices[0].CreatedAt
	for _, inv := range invoices[1:] {
		if inv.CreatedAt.Before(oldest) {
			oldest = inv.CreatedAt
		}
		if inv.CreatedAt.After(newest) {
			newest = inv.CreatedAt
		}
	}
	days := int(math.Ceil(newest.Sub(oldest).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
