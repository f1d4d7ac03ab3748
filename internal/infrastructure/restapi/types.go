package restapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/insights-api/pkg/logger"
)

// Filas crudas tal como las publica el backend. Los montos llegan como
// strings decimales ("12.50"); las referencias entre tablas son IDs numéricos
// que la fachada resuelve en memoria.

type apiInventory struct {
	InventoryID  int    `json:"inventoryId"`
	Product      int    `json:"product"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
	Location     string `json:"location"`
	UpdatedAt    string `json:"updatedAt"`
}

type apiProduct struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	SKUCode     string  `json:"skuCode"`
	Unit        string  `json:"unit"`
	CostPrice   *string `json:"costPrice"` // ausente cuando el backend lo oculta al rol consultante
	SalePrice   string  `json:"salePrice"`
	Discount    string  `json:"discount"`
	Subcategory int     `json:"subcategory"`
	Source      *int    `json:"source"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type apiSubcategory struct {
	SubcategoryID int    `json:"subcategoryId"`
	Category      int    `json:"category"`
	Name          string `json:"name"`
}

type apiCategory struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
}

type apiSource struct {
	SourceID      int    `json:"sourceId"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	CreatedAt     string `json:"createdAt"`
}

type apiCustomer struct {
	CustomerID int    `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type apiInvoice struct {
	InvoiceID           int    `json:"invoiceId"`
	Customer            int    `json:"customer"`
	Status              string `json:"status"`
	PaymentMethod       string `json:"paymentMethod"`
	TotalBeforeDiscount string `json:"totalBeforeDiscount"`
	Tax                 string `json:"tax"`
	Discount            string `json:"discount"`
	GrandTotal          string `json:"grandTotal"`
	Note                string `json:"note"`
	CreatedAt           string `json:"createdAt"`
}

// apiPurchase es una línea de factura (tabla "purchases" del backend).
type apiPurchase struct {
	PurchaseID   int    `json:"purchaseId"`
	Invoice      int    `json:"invoice"`
	Product      int    `json:"product"`
	Quantity     int    `json:"quantity"`
	PricePerUnit string `json:"pricePerUnit"`
	Discount     string `json:"discount"`
	Subtotal     string `json:"subtotal"`
}

// apiNewStock es una recepción de mercancía; la fachada la proyecta como
// orden de compra "received".
type apiNewStock struct {
	NewStockID    int    `json:"newstockId"`
	Supplier      *int   `json:"supplier"`
	Quantity      int    `json:"quantity"`
	PurchasePrice string `json:"purchasePrice"`
	ReceivedDate  string `json:"receivedDate"`
	Note          string `json:"note"`
	CreatedAt     string `json:"createdAt"`
}

// amountParser acumula cuántos montos llegaron malformados en un snapshot.
//
// Política ante strings no numéricos (decisión documentada en DESIGN.md):
// coercionar a cero y seguir, con warn + contador por snapshot. Un monto roto
// no tumba la vista completa; el contador lo hace observable.
type amountParser struct {
	log       *logger.Logger
	malformed int
}

func newAmountParser(log *logger.Logger) *amountParser {
	return &amountParser{log: log}
}

// amount convierte un string decimal del backend; vacío cuenta como cero sin
// considerarse malformado (campos opcionales como costPrice omitido).
func (p *amountParser) amount(raw, field string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.malformed++
		p.log.Warn().Str("field", field).Str("raw", raw).Msg("monto malformado del backend, coercionado a cero")
		return decimal.Zero
	}
	return d
}

// optAmount convierte un string decimal opcional (nil → cero).
func (p *amountParser) optAmount(raw *string, field string) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return p.amount(*raw, field)
}

// when convierte un timestamp del backend (RFC 3339, con o sin fracción).
// Un timestamp roto degrada a cero; los agregados por fecha lo agrupan en el
// día cero en lugar de fallar.
func (p *amountParser) when(raw, field string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	p.malformed++
	p.log.Warn().Str("field", field).Str("raw", raw).Msg("fecha malformada del backend, coercionada a cero")
	return time.Time{}
}
