package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-finder/internal/domain/inventory"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
	"github.com/jhoicas/stock-finder/pkg/logger"
)

// StockFinder punto de entrada del cálculo de stock de un producto (simple o compuesto) para un website.
//
// Si la gestión de stock está apagada globalmente o para un SKU, o si el cálculo corre en el
// scope default (website 0), la cantidad vendible por canal no sirve: se usa la suma de la
// cantidad por fuente (source items) de esos SKUs.
type StockFinder struct {
	salable      SalableQuantityResolver
	sourceItems  repository.SourceItemRepository
	manageStock  ManageStockProvider
	constituents *ConstituentRegistry
	log          *logger.Logger
}

// NewStockFinder construye el caso de uso.
func NewStockFinder(
	salable SalableQuantityResolver,
	sourceItems repository.SourceItemRepository,
	manageStock ManageStockProvider,
	constituents *ConstituentRegistry,
	log *logger.Logger,
) *StockFinder {
	if log == nil {
		log = logger.Nop()
	}
	return &StockFinder{
		salable:      salable,
		sourceItems:  sourceItems,
		manageStock:  manageStock,
		constituents: constituents,
		log:          log,
	}
}

// GetStockQty nunca falla: cualquier error se registra en el log y se devuelve 0.
func (f *StockFinder) GetStockQty(ctx context.Context, product *entity.Product, websiteID int) decimal.Decimal {
	if product == nil {
		f.log.Warn().Int("website_id", websiteID).Msg("stock qty: producto nulo")
		return decimal.Zero
	}

	qty, err := f.stockQty(ctx, product, websiteID)
	if err != nil {
		f.log.Warn().
			Err(err).
			Str("product_type", product.TypeID).
			Str("product_id", product.ID).
			Str("sku", product.SKU).
			Int("website_id", websiteID).
			Msg("stock qty no encontrado para el producto")
		return decimal.Zero
	}
	if qty.IsNegative() {
		return decimal.Zero
	}
	return qty
}

func (f *StockFinder) stockQty(ctx context.Context, product *entity.Product, websiteID int) (decimal.Decimal, error) {
	products, err := f.constituents.Resolve(ctx, product)
	if err != nil {
		return decimal.Zero, err
	}
	manageStock, err := f.manageStock.IsManageStock(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return f.stockQtyForProducts(ctx, products, websiteID, manageStock)
}

// stockQtyForProducts decide por SKU entre cantidad vendible y cantidad por fuente, y resuelve
// todos los SKUs de fallback con una sola consulta.
func (f *StockFinder) stockQtyForProducts(ctx context.Context, products []*entity.Product, websiteID int, manageStock bool) (decimal.Decimal, error) {
	resolutions := make([]domaininv.Resolution, 0, len(products))

	if !manageStock || websiteID == entity.DefaultWebsiteID {
		for _, p := range products {
			resolutions = append(resolutions, domaininv.Fallback(p.SKU))
		}
	} else {
		for _, p := range products {
			qty, err := f.salable.GetSalableQuantity(ctx, p, websiteID)
			if err != nil {
				f.log.Debug().
					Err(err).
					Str("sku", p.SKU).
					Int("website_id", websiteID).
					Bool("manage_stock_disabled", errors.Is(err, domain.ErrManageStockDisabled)).
					Msg("cantidad vendible no disponible, se usa cantidad por fuente")
				resolutions = append(resolutions, domaininv.Fallback(p.SKU))
				continue
			}
			resolutions = append(resolutions, domaininv.Precise(p.SKU, qty))
		}
	}

	plan := domaininv.Collect(resolutions)
	total := plan.PreciseQty
	if len(plan.FallbackSKUs) == 0 {
		return total, nil
	}

	items, err := f.sourceItems.ListBySKUs(ctx, plan.FallbackSKUs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("source items de %v: %w", plan.FallbackSKUs, err)
	}
	return total.Add(domaininv.SumSourceItems(items)), nil
}

