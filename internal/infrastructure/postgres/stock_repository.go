package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var (
	_ repository.StockAssignmentRepository        = (*StockAssignmentRepo)(nil)
	_ repository.StockItemConfigurationRepository = (*StockItemConfigRepo)(nil)
	_ repository.SalableQtyRepository             = (*SalableQtyRepo)(nil)
	_ repository.SalesChannelRepository           = (*SalesChannelRepo)(nil)
)

// StockAssignmentRepo stocks de un SKU: las enlazadas a alguna fuente que tenga el SKU.
type StockAssignmentRepo struct {
	q Querier
}

// NewStockAssignmentRepository construye el adaptador.
func NewStockAssignmentRepository(q Querier) *StockAssignmentRepo {
	return &StockAssignmentRepo{q: q}
}

// GetAssignedStockIDsBySKU devuelve los IDs de stock ordenados de forma ascendente.
func (r *StockAssignmentRepo) GetAssignedStockIDsBySKU(ctx context.Context, sku string) ([]int, error) {
	query := `
		SELECT DISTINCT l.stock_id
		FROM inventory_source_stock_links l
		JOIN inventory_source_items si ON si.source_code = l.source_code
		WHERE si.sku = $1
		ORDER BY l.stock_id`
	rows, err := r.q.Query(ctx, query, sku)
	if err != nil {
		return nil, fmt.Errorf("assigned stocks %s: %w", sku, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("scan assigned stocks %s: %w", sku, err)
	}
	return ids, nil
}

// StockItemConfigRepo configuración de inventario por SKU y stock.
type StockItemConfigRepo struct {
	q Querier
}

// NewStockItemConfigRepository construye el adaptador.
func NewStockItemConfigRepository(q Querier) *StockItemConfigRepo {
	return &StockItemConfigRepo{q: q}
}

// Get devuelve domain.ErrNotFound si no hay fila para el par.
func (r *StockItemConfigRepo) Get(ctx context.Context, sku string, stockID int) (*entity.StockItemConfiguration, error) {
	query := `
		SELECT sku, stock_id, manage_stock
		FROM inventory_stock_item_configs WHERE sku = $1 AND stock_id = $2`
	var c entity.StockItemConfiguration
	err := r.q.QueryRow(ctx, query, sku, stockID).Scan(&c.SKU, &c.StockID, &c.ManageStock)
	if err != nil {
		return nil, fmt.Errorf("stock item config %s/%d: %w", sku, stockID, notFound(err))
	}
	return &c, nil
}

// SalableQtyRepo lee la cantidad vendible publicada por el sistema de reservas.
type SalableQtyRepo struct {
	q Querier
}

// NewSalableQtyRepository construye el adaptador.
func NewSalableQtyRepository(q Querier) *SalableQtyRepo {
	return &SalableQtyRepo{q: q}
}

// Get devuelve 0 si la stock no publica cantidad para el SKU.
func (r *SalableQtyRepo) Get(ctx context.Context, sku string, stockID int) (decimal.Decimal, error) {
	query := `
		SELECT quantity
		FROM inventory_stock_salable_qty WHERE sku = $1 AND stock_id = $2`
	var qty decimal.Decimal
	err := r.q.QueryRow(ctx, query, sku, stockID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("salable qty %s/%d: %w", sku, stockID, err)
	}
	return qty, nil
}

// SalesChannelRepo canales de venta por stock.
type SalesChannelRepo struct {
	q Querier
}

// NewSalesChannelRepository construye el adaptador.
func NewSalesChannelRepository(q Querier) *SalesChannelRepo {
	return &SalesChannelRepo{q: q}
}

// ListByStock devuelve los canales (type, code) asignados a la stock.
func (r *SalesChannelRepo) ListByStock(ctx context.Context, stockID int) ([]entity.SalesChannel, error) {
	query := `
		SELECT type, code
		FROM inventory_stock_sales_channels WHERE stock_id = $1
		ORDER BY type, code`
	rows, err := r.q.Query(ctx, query, stockID)
	if err != nil {
		return nil, fmt.Errorf("sales channels %d: %w", stockID, err)
	}
	channels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.SalesChannel, error) {
		var ch entity.SalesChannel
		err := row.Scan(&ch.Type, &ch.Code)
		return ch, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan sales channels %d: %w", stockID, err)
	}
	return channels, nil
}
