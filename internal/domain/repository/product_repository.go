package repository

import (
	"context"

	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo (DIP).
type ProductRepository interface {
	// GetBySKU devuelve domain.ErrNotFound si el SKU no existe.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// ListChildren devuelve los productos simples que componen un producto compuesto, en orden.
	ListChildren(ctx context.Context, parentID string) ([]*entity.Product, error)
}
