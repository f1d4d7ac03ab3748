package restapi

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/insights-api/internal/domain/entity"
)

// InventoryRepository materializa el inventario desnormalizado.
// El backend lo publica normalizado en cinco tablas; aquí se descargan en
// paralelo y se resuelven los joins en memoria:
//
//	inventario × producto × subcategoría × categoría × proveedor
type InventoryRepository struct {
	c *Client
}

// NewInventoryRepository construye el repositorio de inventario.
func NewInventoryRepository(c *Client) *InventoryRepository {
	return &InventoryRepository{c: c}
}

// ListItems devuelve el snapshot completo del inventario, más reciente primero.
// Si cualquiera de los cinco fetches falla, falla el snapshot completo.
// Un join roto dentro de un fetch exitoso degrada a valores neutros
// ("Unknown", "Uncategorized", cero) en lugar de descartar el registro.
func (r *InventoryRepository) ListItems(ctx context.Context) ([]entity.InventoryItem, error) {
	log := r.c.log.WithStr("snapshot_id", uuid.NewString())

	var (
		inventory []apiInventory
		products  []apiProduct
		subcats   []apiSubcategory
		cats      []apiCategory
		sources   []apiSource
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return r.c.get(gctx, "/inventory/", &inventory) })
	g.Go(func() error { return r.c.get(gctx, "/products/", &products) })
	g.Go(func() error { return r.c.get(gctx, "/subcategories/", &subcats) })
	g.Go(func() error { return r.c.get(gctx, "/categories/", &cats) })
	g.Go(func() error { return r.c.get(gctx, "/sources/", &sources) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snapshot de inventario: %w", err)
	}

	productByID := make(map[int]apiProduct, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}
	subcatByID := make(map[int]apiSubcategory, len(subcats))
	for _, s := range subcats {
		subcatByID[s.SubcategoryID] = s
	}
	catByID := make(map[int]apiCategory, len(cats))
	for _, c := range cats {
		catByID[c.CategoryID] = c
	}
	sourceByID := make(map[int]apiSource, len(sources))
	for _, s := range sources {
		sourceByID[s.SourceID] = s
	}

	parser := newAmountParser(log)
	items := make([]entity.InventoryItem, 0, len(inventory))
	for _, row := range inventory {
		item := entity.InventoryItem{
			ID:        strconv.Itoa(row.InventoryID),
			Name:      "Unknown",
			Category:  "Uncategorized",
			Unit:      "pcs",
			Status:    "Active",
			Stock:     row.Quantity,
			MinStock:  row.ReorderLevel,
			Location:  row.Location,
			UpdatedAt: parser.when(row.UpdatedAt, "inventory.updatedAt"),
		}

		product, ok := productByID[row.Product]
		if ok {
			item.Name = product.ProductName
			item.Description = product.Description
			item.SKU = product.SKUCode
			if product.Unit != "" {
				item.Unit = product.Unit
			}
			if product.Status != "" {
				item.Status = product.Status
			}
			item.CostPrice = parser.optAmount(product.CostPrice, "product.costPrice")
			item.SalePrice = parser.amount(product.SalePrice, "product.salePrice")
			item.Discount = parser.amount(product.Discount, "product.discount")
			item.CreatedAt = parser.when(product.CreatedAt, "product.createdAt")

			if sub, ok := subcatByID[product.Subcategory]; ok {
				item.Subcategory = sub.Name
				if cat, ok := catByID[sub.Category]; ok {
					item.Category = cat.Name
				}
			}
			if product.Source != nil {
				if src, ok := sourceByID[*product.Source]; ok {
					item.Source = src.Name
				}
			}
		}

		items = append(items, item)
	}

	// Más reciente primero, como lista el backend en su UI
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	log.Debug().
		Int("items", len(items)).
		Int("malformed", parser.malformed).
		Msg("snapshot de inventario materializado")

	return items, nil
}
