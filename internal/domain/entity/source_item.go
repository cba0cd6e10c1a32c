package entity

import "github.com/shopspring/decimal"

// SourceItem cantidad física de un SKU en una fuente (bodega), sin asignación a canales.
type SourceItem struct {
	SKU        string
	SourceCode string
	Quantity   decimal.Decimal
	Status     int // 1 = en stock, 0 = agotado
}
