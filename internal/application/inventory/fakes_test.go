package inventory_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// fakeInventory implementa en memoria todos los puertos de lectura del inventario.
type fakeInventory struct {
	assigned    map[string][]int
	configs     map[string]bool // clave sku|stockID -> manageStock
	salable     map[string]decimal.Decimal
	channels    map[int][]entity.SalesChannel
	websites    map[int]string
	source      []entity.SourceItem
	products    map[string]*entity.Product
	children    map[string][]*entity.Product
	config      map[string]string
	failSalable map[string]error
	failSource  error

	websiteCalls int
	salableCalls int
	sourceCalls  [][]string
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{
		assigned:    map[string][]int{},
		configs:     map[string]bool{},
		salable:     map[string]decimal.Decimal{},
		channels:    map[int][]entity.SalesChannel{},
		websites:    map[int]string{},
		products:    map[string]*entity.Product{},
		children:    map[string][]*entity.Product{},
		config:      map[string]string{},
		failSalable: map[string]error{},
	}
}

func key(sku string, stockID int) string { return fmt.Sprintf("%s|%d", sku, stockID) }

// assign registra el SKU en la stock con su configuración y cantidad vendible.
func (f *fakeInventory) assign(sku string, stockID int, manageStock bool, qty int64) {
	f.assigned[sku] = append(f.assigned[sku], stockID)
	f.configs[key(sku, stockID)] = manageStock
	f.salable[key(sku, stockID)] = decimal.NewFromInt(qty)
}

func (f *fakeInventory) addSource(sku, source string, qty int64) {
	f.source = append(f.source, entity.SourceItem{SKU: sku, SourceCode: source, Quantity: decimal.NewFromInt(qty), Status: 1})
}

func (f *fakeInventory) GetAssignedStockIDsBySKU(_ context.Context, sku string) ([]int, error) {
	return f.assigned[sku], nil
}

func (f *fakeInventory) Get(_ context.Context, sku string, stockID int) (*entity.StockItemConfiguration, error) {
	manage, ok := f.configs[key(sku, stockID)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.StockItemConfiguration{SKU: sku, StockID: stockID, ManageStock: manage}, nil
}

func (f *fakeInventory) ListByStock(_ context.Context, stockID int) ([]entity.SalesChannel, error) {
	return f.channels[stockID], nil
}

func (f *fakeInventory) GetByID(_ context.Context, id int) (*entity.Website, error) {
	f.websiteCalls++
	code, ok := f.websites[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Website{ID: id, Code: code}, nil
}

func (f *fakeInventory) ListBySKUs(_ context.Context, skus []string) ([]entity.SourceItem, error) {
	f.sourceCalls = append(f.sourceCalls, append([]string(nil), skus...))
	if f.failSource != nil {
		return nil, f.failSource
	}
	want := map[string]struct{}{}
	for _, s := range skus {
		want[s] = struct{}{}
	}
	var out []entity.SourceItem
	for _, it := range f.source {
		if _, ok := want[it.SKU]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeInventory) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := f.products[sku]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeInventory) ListChildren(_ context.Context, parentID string) ([]*entity.Product, error) {
	children, ok := f.children[parentID]
	if !ok {
		return nil, errors.New("relaciones no disponibles")
	}
	return children, nil
}

func (f *fakeInventory) GetValue(_ context.Context, path string) (string, bool, error) {
	v, ok := f.config[path]
	return v, ok, nil
}

// salableRepo adapta fakeInventory a SalableQtyRepository (Get choca con StockItemConfigurationRepository).
type salableRepo struct{ f *fakeInventory }

func (s salableRepo) Get(_ context.Context, sku string, stockID int) (decimal.Decimal, error) {
	s.f.salableCalls++
	if err, ok := s.f.failSalable[sku]; ok {
		return decimal.Zero, err
	}
	return s.f.salable[key(sku, stockID)], nil
}

func simple(id, sku string) *entity.Product {
	return &entity.Product{ID: id, SKU: sku, TypeID: entity.ProductTypeSimple}
}
