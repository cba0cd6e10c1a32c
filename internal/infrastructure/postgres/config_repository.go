package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo lee core_config_data en scope default.
type ConfigRepo struct {
	q Querier
}

// NewConfigRepository construye el adaptador.
func NewConfigRepository(q Querier) *ConfigRepo {
	return &ConfigRepo{q: q}
}

// GetValue devuelve ("", false, nil) si no hay fila o la tabla aún no existe.
func (r *ConfigRepo) GetValue(ctx context.Context, path string) (string, bool, error) {
	query := `
		SELECT COALESCE(value, '')
		FROM core_config_data
		WHERE scope = 'default' AND scope_id = 0 AND path = $1`
	var value string
	err := r.q.QueryRow(ctx, query, path).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isUndefinedTable(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("config %s: %w", path, err)
	}
	return value, true, nil
}
