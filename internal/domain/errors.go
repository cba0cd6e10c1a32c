package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")

	// ErrManageStockDisabled la gestión de stock está apagada para el SKU en alguna de sus stocks;
	// la cantidad vendible por canal no es confiable y se debe usar la cantidad por fuente.
	ErrManageStockDisabled = errors.New("gestión de stock desactivada para este SKU")
)
