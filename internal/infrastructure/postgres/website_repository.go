package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var _ repository.WebsiteRepository = (*WebsiteRepo)(nil)

// WebsiteRepo registro de websites sobre PostgreSQL.
type WebsiteRepo struct {
	q Querier
}

// NewWebsiteRepository construye el adaptador.
func NewWebsiteRepository(q Querier) *WebsiteRepo {
	return &WebsiteRepo{q: q}
}

// GetByID obtiene un website por ID; domain.ErrNotFound si no existe.
func (r *WebsiteRepo) GetByID(ctx context.Context, id int) (*entity.Website, error) {
	query := `SELECT website_id, code, name FROM store_websites WHERE website_id = $1`
	var w entity.Website
	if err := r.q.QueryRow(ctx, query, id).Scan(&w.ID, &w.Code, &w.Name); err != nil {
		return nil, fmt.Errorf("get website %d: %w", id, notFound(err))
	}
	return &w, nil
}
