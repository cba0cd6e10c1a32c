package entity

// StockItemConfiguration configuración de inventario de un SKU dentro de una stock.
type StockItemConfiguration struct {
	SKU         string
	StockID     int
	ManageStock bool
}
