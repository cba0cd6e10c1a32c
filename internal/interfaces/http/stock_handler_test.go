package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-finder/internal/application/dto"
	"github.com/jhoicas/stock-finder/internal/application/inventory"
	"github.com/jhoicas/stock-finder/internal/domain"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
	apphttp "github.com/jhoicas/stock-finder/internal/interfaces/http"
	"github.com/jhoicas/stock-finder/pkg/logger"
)

// catalogStub productos por SKU.
type catalogStub map[string]*entity.Product

func (c catalogStub) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := c[sku]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (c catalogStub) ListChildren(context.Context, string) ([]*entity.Product, error) {
	return nil, nil
}

// qtyStub cantidad fija por SKU y website.
type qtyStub map[string]int64

func (q qtyStub) GetStockQty(_ context.Context, p *entity.Product, websiteID int) decimal.Decimal {
	return decimal.NewFromInt(q[p.SKU] * int64(websiteID+1))
}

func buildStockApp() *fiber.App {
	catalog := catalogStub{
		"A": {ID: "1", SKU: "A", TypeID: entity.ProductTypeSimple},
		"B": {ID: "2", SKU: "B", TypeID: entity.ProductTypeSimple},
	}
	uc := inventory.NewStockQueryUseCase(catalog, qtyStub{"A": 10, "B": 3}, nil)

	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{StockQuery: uc, JWTSecret: testJWTSecret, JWTIssuer: testIssuer})
	return app
}

func TestGetBySKU(t *testing.T) {
	resp := doGet(t, buildStockApp(), "/api/stock/A?website_id=1", bearer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	var body dto.StockQtyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "A", body.SKU)
	assert.Equal(t, 1, body.WebsiteID)
	assert.Equal(t, "20", body.Quantity.String())
}

func TestGetBySKU_WebsitePorDefectoEsCero(t *testing.T) {
	resp := doGet(t, buildStockApp(), "/api/stock/A", bearer(t))
	defer resp.Body.Close()

	var body dto.StockQtyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.DefaultWebsiteID, body.WebsiteID)
	assert.Equal(t, "10", body.Quantity.String())
}

func TestGetBySKU_SKUDesconocidoDevuelveCero(t *testing.T) {
	resp := doGet(t, buildStockApp(), "/api/stock/NOPE?website_id=1", bearer(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.StockQtyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Quantity.IsZero())
}

func TestGetBySKU_WebsiteInvalido_Retorna400(t *testing.T) {
	for _, q := range []string{"abc", "-1"} {
		resp := doGet(t, buildStockApp(), "/api/stock/A?website_id="+q, bearer(t))
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "website_id=%s", q)
	}
}

func TestGetBySKU_SinToken_Retorna401(t *testing.T) {
	resp := doGet(t, buildStockApp(), "/api/stock/A", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetBatch(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/stock/batch",
		strings.NewReader(`{"skus":["A","B","C"],"website_id":0}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t))
	resp, err := buildStockApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.StockQtyBatchResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 3)
	assert.Equal(t, "10", body.Items[0].Quantity.String())
	assert.Equal(t, "3", body.Items[1].Quantity.String())
	assert.True(t, body.Items[2].Quantity.IsZero())
}

func TestGetBatch_CuerpoInvalido_Retorna400(t *testing.T) {
	for _, payload := range []string{`{`, `{"skus":[]}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/stock/batch", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearer(t))
		resp, err := buildStockApp().Test(req, -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
	}
}
