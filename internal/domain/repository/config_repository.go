package repository

import "context"

// ConfigRepository valores de configuración persistidos (scope default).
type ConfigRepository interface {
	// GetValue devuelve (valor, true) si existe la ruta; ("", false) si no.
	GetValue(ctx context.Context, path string) (string, bool, error)
}
