package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-finder/internal/domain/inventory"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var _ SalableQuantityResolver = (*SalableQuantityUseCase)(nil)

// SalableQuantityUseCase suma la cantidad vendible de un SKU en las stocks asignadas al website pedido.
type SalableQuantityUseCase struct {
	assignments repository.StockAssignmentRepository
	configs     repository.StockItemConfigurationRepository
	salableQty  repository.SalableQtyRepository
	channels    repository.SalesChannelRepository
	websites    repository.WebsiteRepository
}

// NewSalableQuantityUseCase construye el caso de uso.
func NewSalableQuantityUseCase(
	assignments repository.StockAssignmentRepository,
	configs repository.StockItemConfigurationRepository,
	salableQty repository.SalableQtyRepository,
	channels repository.SalesChannelRepository,
	websites repository.WebsiteRepository,
) *SalableQuantityUseCase {
	return &SalableQuantityUseCase{
		assignments: assignments,
		configs:     configs,
		salableQty:  salableQty,
		channels:    channels,
		websites:    websites,
	}
}

// GetSalableQuantity recorre las stocks asignadas al SKU. Si alguna tiene la gestión de stock
// apagada devuelve domain.ErrManageStockDisabled sin sumar nada. Solo suman las stocks con un
// canal website cuyo código coincide con el del website; website desconocido -> domain.ErrNotFound.
func (uc *SalableQuantityUseCase) GetSalableQuantity(ctx context.Context, product *entity.Product, websiteID int) (decimal.Decimal, error) {
	if product == nil || product.SKU == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	sku := product.SKU

	stockIDs, err := uc.assignments.GetAssignedStockIDsBySKU(ctx, sku)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stocks asignadas a %s: %w", sku, err)
	}

	scope := &websiteScope{repo: uc.websites, id: websiteID}
	inScope := make([]int, 0, len(stockIDs))
	for _, stockID := range stockIDs {
		cfg, err := uc.configs.Get(ctx, sku, stockID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("configuración de %s en stock %d: %w", sku, stockID, err)
		}
		if !cfg.ManageStock {
			return decimal.Zero, fmt.Errorf("%s en stock %d: %w", sku, stockID, domain.ErrManageStockDisabled)
		}

		ok, err := uc.stockMatchesScope(ctx, stockID, scope)
		if err != nil {
			return decimal.Zero, err
		}
		if ok {
			inScope = append(inScope, stockID)
		}
	}

	qty := decimal.Zero
	for _, stockID := range inScope {
		q, err := uc.salableQty.Get(ctx, sku, stockID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("cantidad vendible de %s en stock %d: %w", sku, stockID, err)
		}
		qty = qty.Add(q)
	}
	return qty, nil
}

// stockMatchesScope true si la stock tiene un canal website con el código del website pedido.
// El código del website solo se consulta cuando hay algún canal de tipo website.
func (uc *SalableQuantityUseCase) stockMatchesScope(ctx context.Context, stockID int, scope *websiteScope) (bool, error) {
	channels, err := uc.channels.ListByStock(ctx, stockID)
	if err != nil {
		return false, fmt.Errorf("canales de la stock %d: %w", stockID, err)
	}
	for _, ch := range channels {
		if ch.Type != entity.SalesChannelTypeWebsite {
			continue
		}
		code, err := scope.code(ctx)
		if err != nil {
			return false, err
		}
		return domaininv.ChannelsMatchWebsite(channels, code), nil
	}
	return false, nil
}

// websiteScope resuelve el código del website una sola vez por cálculo.
type websiteScope struct {
	repo     repository.WebsiteRepository
	id       int
	resolved string
	done     bool
}

func (s *websiteScope) code(ctx context.Context) (string, error) {
	if s.done {
		return s.resolved, nil
	}
	w, err := s.repo.GetByID(ctx, s.id)
	if err != nil {
		return "", fmt.Errorf("website %d: %w", s.id, err)
	}
	if w == nil {
		return "", fmt.Errorf("website %d: %w", s.id, domain.ErrNotFound)
	}
	s.resolved, s.done = w.Code, true
	return s.resolved, nil
}
