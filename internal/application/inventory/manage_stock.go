package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/stock-finder/internal/domain/repository"
)

// ManageStockConfigPath ruta del flag global en core_config_data.
const ManageStockConfigPath = "cataloginventory/item_options/manage_stock"

var _ ManageStockProvider = (*ConfigManageStock)(nil)

// ConfigManageStock lee el flag de la BD; si no hay fila usa el valor por defecto de la configuración.
type ConfigManageStock struct {
	repo repository.ConfigRepository
	def  bool
}

// NewConfigManageStock construye el proveedor.
func NewConfigManageStock(repo repository.ConfigRepository, def bool) *ConfigManageStock {
	return &ConfigManageStock{repo: repo, def: def}
}

// IsManageStock implementa ManageStockProvider.
func (p *ConfigManageStock) IsManageStock(ctx context.Context) (bool, error) {
	raw, ok, err := p.repo.GetValue(ctx, ManageStockConfigPath)
	if err != nil {
		return false, fmt.Errorf("leer %s: %w", ManageStockConfigPath, err)
	}
	if !ok {
		return p.def, nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("valor inválido para %s: %q", ManageStockConfigPath, raw)
	}
	return b, nil
}

// StaticManageStock valor fijo, para entornos sin tabla de configuración.
type StaticManageStock bool

// IsManageStock implementa ManageStockProvider.
func (s StaticManageStock) IsManageStock(context.Context) (bool, error) {
	return bool(s), nil
}
