package entity

// Tipos de producto conocidos.
const (
	ProductTypeSimple       = "simple"
	ProductTypeConfigurable = "configurable"
)

// Product vista de solo lectura de un producto del catálogo.
// Para el cálculo de stock solo importan SKU y TypeID; ID se usa en logs.
type Product struct {
	ID     string
	SKU    string // único dentro del catálogo
	TypeID string
	Name   string
}

