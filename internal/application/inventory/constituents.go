package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-finder/internal/domain/entity"
	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

// ConstituentRegistry resolvers de productos compuestos por tipo de producto.
// Los tipos sin resolver registrado se tratan como un conjunto de un solo producto.
// Register debe llamarse durante el arranque, antes de atender consultas.
type ConstituentRegistry struct {
	resolvers map[string]ConstituentResolver
}

// NewConstituentRegistry construye un registro vacío.
func NewConstituentRegistry() *ConstituentRegistry {
	return &ConstituentRegistry{resolvers: make(map[string]ConstituentResolver)}
}

// NewDefaultConstituentRegistry registra el tipo configurable resuelto por relaciones padre-hijo.
func NewDefaultConstituentRegistry(products repository.ProductRepository) *ConstituentRegistry {
	r := NewConstituentRegistry()
	r.Register(entity.ProductTypeConfigurable, ChildrenResolver(products))
	return r
}

// Register asocia un resolver a un tipo de producto (reemplaza el anterior si existía).
func (r *ConstituentRegistry) Register(typeID string, resolver ConstituentResolver) {
	r.resolvers[typeID] = resolver
}

// Resolve devuelve los productos cuyo stock se suma para product.
func (r *ConstituentRegistry) Resolve(ctx context.Context, product *entity.Product) ([]*entity.Product, error) {
	resolver, ok := r.resolvers[product.TypeID]
	if !ok {
		return []*entity.Product{product}, nil
	}
	children, err := resolver.Constituents(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("componentes de %s %s: %w", product.TypeID, product.ID, err)
	}
	return children, nil
}

// ChildrenResolver resuelve los hijos de un producto a partir de catalog_product_relations.
func ChildrenResolver(products repository.ProductRepository) ConstituentResolver {
	return ConstituentResolverFunc(func(ctx context.Context, product *entity.Product) ([]*entity.Product, error) {
		return products.ListChildren(ctx, product.ID)
	})
}
