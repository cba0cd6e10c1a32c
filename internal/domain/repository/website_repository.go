package repository

import (
	"context"

	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// WebsiteRepository registro de websites.
type WebsiteRepository interface {
	// GetByID devuelve domain.ErrNotFound si el website no existe.
	GetByID(ctx context.Context, id int) (*entity.Website, error)
}
