package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/application/dto"
	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
	"github.com/jhoicas/stock-finder/pkg/logger"
)

// StockQuerier entrada usada por StockQueryUseCase; implementado por StockFinder.
type StockQuerier interface {
	GetStockQty(ctx context.Context, product *entity.Product, websiteID int) decimal.Decimal
}

// StockQueryUseCase consultas de stock por SKU (una o por lote), para sincronización de catálogo.
// Igual que GetStockQty, nunca falla por datos de inventario: un SKU desconocido vale 0.
type StockQueryUseCase struct {
	products repository.ProductRepository
	finder   StockQuerier
	log      *logger.Logger
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(products repository.ProductRepository, finder StockQuerier, log *logger.Logger) *StockQueryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockQueryUseCase{products: products, finder: finder, log: log}
}

// GetStockQtyBySKU carga el producto y calcula su stock para el website.
func (uc *StockQueryUseCase) GetStockQtyBySKU(ctx context.Context, sku string, websiteID int) (*dto.StockQtyResponse, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" || websiteID < 0 {
		return nil, domain.ErrInvalidInput
	}
	return &dto.StockQtyResponse{
		SKU:       sku,
		WebsiteID: websiteID,
		Quantity:  uc.qtyForSKU(ctx, sku, websiteID),
	}, nil
}

// GetStockQtyBatch calcula el stock de cada SKU de forma independiente.
func (uc *StockQueryUseCase) GetStockQtyBatch(ctx context.Context, in dto.StockQtyBatchRequest) (*dto.StockQtyBatchResponse, error) {
	if len(in.SKUs) == 0 || len(in.SKUs) > dto.MaxBatchSKUs || in.WebsiteID < 0 {
		return nil, domain.ErrInvalidInput
	}
	skus := make([]string, 0, len(in.SKUs))
	for _, raw := range in.SKUs {
		sku := strings.TrimSpace(raw)
		if sku == "" {
			return nil, domain.ErrInvalidInput
		}
		skus = append(skus, sku)
	}

	out := &dto.StockQtyBatchResponse{WebsiteID: in.WebsiteID, Items: make([]dto.StockQtyResponse, 0, len(skus))}
	for _, sku := range skus {
		out.Items = append(out.Items, dto.StockQtyResponse{
			SKU:       sku,
			WebsiteID: in.WebsiteID,
			Quantity:  uc.qtyForSKU(ctx, sku, in.WebsiteID),
		})
	}
	return out, nil
}

func (uc *StockQueryUseCase) qtyForSKU(ctx context.Context, sku string, websiteID int) decimal.Decimal {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		ev := uc.log.Warn()
		if errors.Is(err, domain.ErrNotFound) {
			ev = uc.log.Debug()
		}
		ev.Err(err).Str("sku", sku).Int("website_id", websiteID).Msg("stock qty: producto no encontrado")
		return decimal.Zero
	}
	return uc.finder.GetStockQty(ctx, product, websiteID)
}
