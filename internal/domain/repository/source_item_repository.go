package repository

import (
	"context"

	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// SourceItemRepository cantidades físicas por fuente.
type SourceItemRepository interface {
	// ListBySKUs devuelve todos los source items cuyo SKU esté en skus (una sola consulta).
	ListBySKUs(ctx context.Context, skus []string) ([]entity.SourceItem, error)
}
