package dto

import "github.com/shopspring/decimal"

// StockQtyResponse respuesta de GET /api/stock/:sku.
type StockQtyResponse struct {
	SKU       string          `json:"sku"`
	WebsiteID int             `json:"website_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StockQtyBatchRequest body para POST /api/stock/batch.
type StockQtyBatchRequest struct {
	SKUs      []string `json:"skus"`
	WebsiteID int      `json:"website_id"`
}

// StockQtyBatchResponse cantidades por SKU, en el orden pedido.
type StockQtyBatchResponse struct {
	WebsiteID int                `json:"website_id"`
	Items     []StockQtyResponse `json:"items"`
}
