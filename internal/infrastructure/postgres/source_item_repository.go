package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var _ repository.SourceItemRepository = (*SourceItemRepo)(nil)

// SourceItemRepo cantidades por fuente sobre PostgreSQL.
type SourceItemRepo struct {
	q Querier
}

// NewSourceItemRepository construye el adaptador.
func NewSourceItemRepository(q Querier) *SourceItemRepo {
	return &SourceItemRepo{q: q}
}

// ListBySKUs una sola consulta para todos los SKUs (sku = ANY($1)).
func (r *SourceItemRepo) ListBySKUs(ctx context.Context, skus []string) ([]entity.SourceItem, error) {
	if len(skus) == 0 {
		return []entity.SourceItem{}, nil
	}
	query := `
		SELECT sku, source_code, quantity, status
		FROM inventory_source_items
		WHERE sku = ANY($1)
		ORDER BY sku, source_code`
	rows, err := r.q.Query(ctx, query, skus)
	if err != nil {
		return nil, fmt.Errorf("list source items: %w", err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.SourceItem, error) {
		var it entity.SourceItem
		err := row.Scan(&it.SKU, &it.SourceCode, &it.Quantity, &it.Status)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan source items: %w", err)
	}
	return items, nil
}
