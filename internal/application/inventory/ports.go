package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// SalableQuantityResolver calcula la cantidad vendible de un producto simple para un website.
// Implementado por SalableQuantityUseCase.
type SalableQuantityResolver interface {
	GetSalableQuantity(ctx context.Context, product *entity.Product, websiteID int) (decimal.Decimal, error)
}

// ManageStockProvider lee el flag global "gestionar stock".
type ManageStockProvider interface {
	IsManageStock(ctx context.Context) (bool, error)
}

// ConstituentResolver resuelve los productos simples que componen un producto compuesto.
type ConstituentResolver interface {
	Constituents(ctx context.Context, product *entity.Product) ([]*entity.Product, error)
}

// ConstituentResolverFunc adapta una función a ConstituentResolver.
type ConstituentResolverFunc func(ctx context.Context, product *entity.Product) ([]*entity.Product, error)

// Constituents implementa ConstituentResolver.
func (f ConstituentResolverFunc) Constituents(ctx context.Context, product *entity.Product) ([]*entity.Product, error) {
	return f(ctx, product)
}
