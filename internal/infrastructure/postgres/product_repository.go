package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura del catálogo sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, type_id, name
		FROM catalog_products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, sku).Scan(&p.ID, &p.SKU, &p.TypeID, &p.Name)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", sku, notFound(err))
	}
	return &p, nil
}

// ListChildren devuelve los hijos de un producto compuesto en el orden de la relación.
func (r *ProductRepo) ListChildren(ctx context.Context, parentID string) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.sku, p.type_id, p.name
		FROM catalog_product_relations rel
		JOIN catalog_products p ON p.id = rel.child_id
		WHERE rel.parent_id = $1
		ORDER BY rel.position, p.id`
	rows, err := r.q.Query(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list children %s: %w", parentID, err)
	}
	children, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Product, error) {
		var p entity.Product
		err := row.Scan(&p.ID, &p.SKU, &p.TypeID, &p.Name)
		return &p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan children %s: %w", parentID, err)
	}
	return children, nil
}
