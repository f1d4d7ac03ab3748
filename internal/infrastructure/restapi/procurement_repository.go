package restapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// ProcurementRepository materializa proveedores y órdenes de compra.
// El backend no tiene órdenes de compra como tal: registra recepciones de
// stock ("newstock"); cada recepción se proyecta como una orden "received"
// con monto = precio_compra × cantidad.
type ProcurementRepository struct {
	c *Client
}

// NewProcurementRepository construye el repositorio de compras.
func NewProcurementRepository(c *Client) *ProcurementRepository {
	return &ProcurementRepository{c: c}
}

// ListSuppliers devuelve todos los proveedores, más reciente primero.
func (r *ProcurementRepository) ListSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	var sources []apiSource
	if err := r.c.get(ctx, "/sources/", &sources); err != nil {
		return nil, fmt.Errorf("snapshot de proveedores: %w", err)
	}

	parser := newAmountParser(r.c.log)
	suppliers := make([]entity.Supplier, 0, len(sources))
	for _, s := range sources {
		suppliers = append(suppliers, entity.Supplier{
			ID:            strconv.Itoa(s.SourceID),
			Name:          s.Name,
			ContactPerson: s.ContactPerson,
			Email:         s.Email,
			Phone:         s.Phone,
			Address:       s.Address,
			CreatedAt:     parser.when(s.CreatedAt, "source.createdAt"),
		})
	}

	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].CreatedAt.After(suppliers[j].CreatedAt)
	})
	return suppliers, nil
}

// ListPurchaseOrders devuelve las órdenes de compra derivadas de las
// recepciones de stock. Una recepción sin proveedor se conserva con
// SupplierID vacío y nombre "Unknown".
func (r *ProcurementRepository) ListPurchaseOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	log := r.c.log.WithStr("snapshot_id", uuid.NewString())

	var (
		stocks  []apiNewStock
		sources []apiSource
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.c.get(gctx, "/newstock/", &stocks) })
	g.Go(func() error { return r.c.get(gctx, "/sources/", &sources) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot de órdenes de compra: %w", err)
	}

	sourceByID := make(map[int]apiSource, len(sources))
	for _, s := range sources {
		sourceByID[s.SourceID] = s
	}

	parser := newAmountParser(log)
	orders := make([]entity.PurchaseOrder, 0, len(stocks))
	for _, stock := range stocks {
		order := entity.PurchaseOrder{
			ID:           strconv.Itoa(stock.NewStockID),
			Number:       fmt.Sprintf("PO-%d", stock.NewStockID),
			SupplierName: "Unknown",
			Status:       entity.PurchaseOrderStatusReceived,
			OrderDate:    parser.when(stock.ReceivedDate, "newstock.receivedDate"),
			ReceivedDate: parser.when(stock.ReceivedDate, "newstock.receivedDate"),
			Notes:        stock.Note,
			CreatedAt:    parser.when(stock.CreatedAt, "newstock.createdAt"),
		}
		price := parser.amount(stock.PurchasePrice, "newstock.purchasePrice")
		order.TotalAmount = price.Mul(decimal.NewFromInt(int64(stock.Quantity)))
		if stock.Supplier != nil {
			order.SupplierID = strconv.Itoa(*stock.Supplier)
			if src, ok := sourceByID[*stock.Supplier]; ok {
				order.SupplierName = src.Name
			}
		}
		orders = append(orders, order)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	log.Debug().
		Int("orders", len(orders)).
		Int("malformed", parser.malformed).
		Msg("snapshot de órdenes de compra materializado")

	return orders, nil
}
