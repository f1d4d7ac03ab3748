package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/internal/application/dto"
	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// SupplierAnalytics acumula gasto y confiabilidad por proveedor, ordenado por
// gasto total descendente.
//
// El resultado se siembra con la lista de proveedores: un proveedor sin
// órdenes aparece con cero órdenes y confiabilidad 0 en vez de desaparecer.
// Una orden cuyo proveedor ya no existe se agrupa bajo su SupplierID con el
// nombre que traía la orden.
func SupplierAnalytics(suppliers []entity.Supplier, orders []entity.PurchaseOrder) []dto.SupplierAnalyticsDTO {
	index := make(map[string]int, len(suppliers))
	out := make([]dto.SupplierAnalyticsDTO, 0, len(suppliers))
	lastOrder := make(map[string]time.Time)

	for _, s := range suppliers {
		index[s.ID] = len(out)
		out = append(out, dto.SupplierAnalyticsDTO{SupplierID: s.ID, Name: s.Name})
	}

	for _, po := range orders {
		i, ok := index[po.SupplierID]
		if !ok {
			i = len(out)
			index[po.SupplierID] = i
			out = append(out, dto.SupplierAnalyticsDTO{SupplierID: po.SupplierID, Name: po.SupplierName})
		}

		out[i].TotalOrders++
		out[i].TotalSpend = out[i].TotalSpend.Add(po.TotalAmount)
		switch po.Status {
		case entity.PurchaseOrderStatusReceived:
			out[i].ReceivedOrders++
		case entity.PurchaseOrderStatusPending:
			out[i].PendingOrders++
		case entity.PurchaseOrderStatusCancelled:
			out[i].CancelledOrders++
		}
		// Última orden por fecha real, no por orden de iteración
		if po.OrderDate.After(lastOrder[po.SupplierID]) {
			lastOrder[po.SupplierID] = po.OrderDate
		}
	}

	for i := range out {
		if out[i].TotalOrders > 0 {
			out[i].Reliability = int(decimal.NewFromInt(int64(out[i].ReceivedOrders * 100)).
				Div(decimal.NewFromInt(int64(out[i].TotalOrders))).
				Round(0).IntPart())
		}
		if last, ok := lastOrder[out[i].SupplierID]; ok && !last.IsZero() {
			out[i].LastOrderDate = last.Format("2006-01-02")
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpend.GreaterThan(out[j].TotalSpend)
	})
	return out
}

// TopSuppliers devuelve los primeros limit proveedores por gasto.
func TopSuppliers(suppliers []entity.Supplier, orders []entity.PurchaseOrder, limit int) []dto.SupplierAnalyticsDTO {
	ranked := SupplierAnalytics(suppliers, orders)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
