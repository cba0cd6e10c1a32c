package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-finder/internal/application/inventory"
	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

const (
	websiteBase  = 1
	websiteOther = 2
)

func newSalableUC(f *fakeInventory) *inventory.SalableQuantityUseCase {
	return inventory.NewSalableQuantityUseCase(f, f, salableRepo{f}, f, f)
}

// twoStockFixture SKU "A" en stock 1 (canal base, 10 vendibles) y stock 2 (canal other, 5 vendibles).
func twoStockFixture() *fakeInventory {
	f := newFakeInventory()
	f.websites[websiteBase] = "base"
	f.websites[websiteOther] = "other"
	f.channels[1] = []entity.SalesChannel{{Type: entity.SalesChannelTypeWebsite, Code: "base"}}
	f.channels[2] = []entity.SalesChannel{{Type: entity.SalesChannelTypeWebsite, Code: "other"}}
	f.assign("A", 1, true, 10)
	f.assign("A", 2, true, 5)
	return f
}

func TestGetSalableQuantity_SoloStocksDelWebsite(t *testing.T) {
	f := twoStockFixture()
	uc := newSalableUC(f)

	qty, err := uc.GetSalableQuantity(context.Background(), simple("1", "A"), websiteBase)
	require.NoError(t, err)
	assert.Equal(t, "10", qty.String(), "la stock 2 pertenece a otro website")

	qty, err = uc.GetSalableQuantity(context.Background(), simple("1", "A"), websiteOther)
	require.NoError(t, err)
	assert.Equal(t, "5", qty.String())

	assert.Equal(t, 2, f.websiteCalls, "el código del website se resuelve una vez por cálculo")
}

func TestGetSalableQuantity_GestionDesactivadaFallaSinSumaParcial(t *testing.T) {
	f := twoStockFixture()
	f.configs[key("A", 2)] = false
	uc := newSalableUC(f)

	qty, err := uc.GetSalableQuantity(context.Background(), simple("1", "A"), websiteBase)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManageStockDisabled))
	assert.True(t, qty.IsZero())
	assert.Equal(t, 0, f.salableCalls, "no se consulta ninguna cantidad vendible")
}

func TestGetSalableQuantity_StockSinCanalDelWebsiteNoSuma(t *testing.T) {
	f := newFakeInventory()
	f.websites[websiteBase] = "base"
	f.channels[7] = []entity.SalesChannel{{Type: "store_group", Code: "base"}}
	f.assign("B", 7, true, 40)
	uc := newSalableUC(f)

	qty, err := uc.GetSalableQuantity(context.Background(), simple("2", "B"), websiteBase)
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
	assert.Equal(t, 0, f.websiteCalls, "sin canales website no hace falta resolver el código")
}

func TestGetSalableQuantity_SinStocksAsignadas(t *testing.T) {
	f := newFakeInventory()
	uc := newSalableUC(f)

	qty, err := uc.GetSalableQuantity(context.Background(), simple("3", "C"), websiteBase)
	require.NoError(t, err)
	assert.True(t, qty.IsZero())
}

func TestGetSalableQuantity_WebsiteDesconocido(t *testing.T) {
	f := twoStockFixture()
	uc := newSalableUC(f)

	_, err := uc.GetSalableQuantity(context.Background(), simple("1", "A"), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetSalableQuantity_SinConfiguracionDeStock(t *testing.T) {
	f := twoStockFixture()
	delete(f.configs, key("A", 2))
	uc := newSalableUC(f)

	_, err := uc.GetSalableQuantity(context.Background(), simple("1", "A"), websiteBase)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetSalableQuantity_ProductoInvalido(t *testing.T) {
	uc := newSalableUC(newFakeInventory())

	_, err := uc.GetSalableQuantity(context.Background(), nil, websiteBase)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetSalableQuantity(context.Background(), &entity.Product{ID: "x"}, websiteBase)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
