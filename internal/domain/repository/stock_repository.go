package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// StockAssignmentRepository resuelve a qué stocks está asignado un SKU.
type StockAssignmentRepository interface {
	GetAssignedStockIDsBySKU(ctx context.Context, sku string) ([]int, error)
}

// StockItemConfigurationRepository configuración de inventario por SKU y stock.
type StockItemConfigurationRepository interface {
	// Get devuelve domain.ErrNotFound si no hay configuración para el par (sku, stockID).
	Get(ctx context.Context, sku string, stockID int) (*entity.StockItemConfiguration, error)
}

// SalableQtyRepository cantidad vendible de un SKU en una stock, calculada por el sistema de reservas.
type SalableQtyRepository interface {
	Get(ctx context.Context, sku string, stockID int) (decimal.Decimal, error)
}

// SalesChannelRepository canales de venta asignados a una stock.
type SalesChannelRepository interface {
	ListByStock(ctx context.Context, stockID int) ([]entity.SalesChannel, error)
}
