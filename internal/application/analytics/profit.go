package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

const topProfitableProducts = 10 // la UI recorta a 5; el API entrega 10

var hundred = decimal.NewFromInt(100)

// ProfitAnalytics calcula ingresos, costo y utilidad sobre facturas pagadas,
// cruzando cada línea con el inventario para obtener el costo de compra.
//
// Una línea cuyo producto ya no existe en inventario se omite sin abortar el
// cálculo (datos parciales degradan con gracia) y se cuenta en
// SkippedLineItems. Un producto sin costo registrado cuesta cero, no es error.
func ProfitAnalytics(invoices []entity.Invoice, items []entity.InventoryItem) dto.ProfitAnalyticsDTO {
	itemByID := make(map[string]entity.InventoryItem, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}

	result := dto.ProfitAnalyticsDTO{TopProfitableProducts: []dto.ProductProfitDTO{}}
	index := make(map[string]int)
	perProduct := []dto.ProductProfitDTO{}

	for _, inv := range invoices {
		if !inv.IsPaid() {
			continue
		}
		for _, line := range inv.Items {
			it, ok := itemByID[line.InventoryItemID]
			if !ok {
				result.SkippedLineItems++
				continue
			}

			cost := it.CostPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			profit := line.Total.Sub(cost)

			result.TotalRevenue = result.TotalRevenue.Add(line.Total)
			result.TotalCost = result.TotalCost.Add(cost)
			result.TotalProfit = result.TotalProfit.Add(profit)

			i, seen := index[it.ID]
			if !seen {
				i = len(perProduct)
				index[it.ID] = i
				perProduct = append(perProduct, dto.ProductProfitDTO{ItemID: it.ID, Name: it.Name})
			}
			perProduct[i].Revenue = perProduct[i].Revenue.Add(line.Total)
			perProduct[i].Cost = perProduct[i].Cost.Add(cost)
			perProduct[i].Profit = perProduct[i].Profit.Add(profit)
			perProduct[i].Units += line.Quantity
		}
	}

	if result.TotalRevenue.IsPositive() {
		result.ProfitMargin = result.TotalProfit.Div(result.TotalRevenue).Mul(hundred).Round(2)
	}

	sort.SliceStable(perProduct, func(i, j int) bool {
		return perProduct[i].Profit.GreaterThan(perProduct[j].Profit)
	})
	if len(perProduct) > topProfitableProducts {
		perProduct = perProduct[:topProfitableProducts]
	}
	result.TopProfitableProducts = perProduct

	return result
}
