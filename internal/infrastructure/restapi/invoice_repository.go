package restapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// InvoiceRepository materializa las facturas con sus líneas desnormalizadas.
// El backend publica cabeceras, líneas ("purchases"), productos y clientes en
// tablas separadas; aquí se descargan en paralelo y se arma el join:
//
//	factura × líneas(por factura) × producto(nombre/SKU) × cliente(nombre/email)
type InvoiceRepository struct {
	c *Client
}

// NewInvoiceRepository construye el repositorio de facturas.
func NewInvoiceRepository(c *Client) *InvoiceRepository {
	return &InvoiceRepository{c: c}
}

// ListInvoices devuelve todas las facturas en todos los estados.
// Una línea cuyo producto ya no existe se conserva con nombre "Unknown":
// descartar ventas reales distorsionaría los agregados. Una factura cuyo
// cliente ya no existe degrada a nombre "Unknown" y email vacío (el motor de
// clientes agrupa entonces por nombre).
func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	log := r.c.log.WithStr("snapshot_id", uuid.NewString())

	var (
		invoices  []apiInvoice
		purchases []apiPurchase
		products  []apiProduct
		customers []apiCustomer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.c.get(gctx, "/invoices/", &invoices) })
	g.Go(func() error { return r.c.get(gctx, "/purchases/", &purchases) })
	g.Go(func() error { return r.c.get(gctx, "/products/", &products) })
	g.Go(func() error { return r.c.get(gctx, "/customers/", &customers) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot de facturas: %w", err)
	}

	productByID := make(map[int]apiProduct, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}
	customerByID := make(map[int]apiCustomer, len(customers))
	for _, c := range customers {
		customerByID[c.CustomerID] = c
	}
	linesByInvoice := make(map[int][]apiPurchase, len(invoices))
	for _, line := range purchases {
		linesByInvoice[line.Invoice] = append(linesByInvoice[line.Invoice], line)
	}

	parser := newAmountParser(log)
	result := make([]entity.Invoice, 0, len(invoices))
	for _, row := range invoices {
		inv := entity.Invoice{
			ID:            strconv.Itoa(row.InvoiceID),
			Number:        fmt.Sprintf("INV-%d", row.InvoiceID),
			CustomerName:  "Unknown",
			Status:        strings.ToLower(row.Status),
			PaymentMethod: row.PaymentMethod,
			Subtotal:      parser.amount(row.TotalBeforeDiscount, "invoice.totalBeforeDiscount"),
			Tax:           parser.amount(row.Tax, "invoice.tax"),
			Discount:      parser.amount(row.Discount, "invoice.discount"),
			Total:         parser.amount(row.GrandTotal, "invoice.grandTotal"),
			Notes:         row.Note,
			CreatedAt:     parser.when(row.CreatedAt, "invoice.createdAt"),
		}
		if cust, ok := customerByID[row.Customer]; ok {
			inv.CustomerName = cust.Name
			inv.CustomerEmail = cust.Email
		}

		lines := linesByInvoice[row.InvoiceID]
		inv.Items = make([]entity.InvoiceItem, 0, len(lines))
		for _, line := range lines {
			item := entity.InvoiceItem{
				ID:              strconv.Itoa(line.PurchaseID),
				InventoryItemID: strconv.Itoa(line.Product),
				Name:            "Unknown",
				Quantity:        line.Quantity,
				Price:           parser.amount(line.PricePerUnit, "purchase.pricePerUnit"),
				Discount:        parser.amount(line.Discount, "purchase.discount"),
				Total:           parser.amount(line.Subtotal, "purchase.subtotal"),
			}
			if product, ok := productByID[line.Product]; ok {
				item.Name = product.ProductName
				item.SKU = product.SKUCode
			}
			inv.Items = append(inv.Items, item)
		}

		result = append(result, inv)
	}

	log.Debug().
		Int("invoices", len(result)).
		Int("lines", len(purchases)).
		Int("malformed", parser.malformed).
		Msg("snapshot de facturas materializado")

	return result, nil
}
