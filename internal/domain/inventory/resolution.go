package inventory

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stock-finder/internal/domain/entity"
)

// Resolution resultado del cálculo de un SKU: cantidad vendible precisa o derivación
// a la cantidad por fuente. Un SKU nunca queda en ambos caminos.
type Resolution struct {
	SKU      string
	Qty      decimal.Decimal
	Fallback bool
}

// Precise SKU resuelto con la cantidad vendible por canal.
func Precise(sku string, qty decimal.Decimal) Resolution {
	return Resolution{SKU: sku, Qty: qty}
}

// Fallback SKU que debe resolverse con la suma de sus source items.
func Fallback(sku string) Resolution {
	return Resolution{SKU: sku, Fallback: true}
}

// Plan suma de las cantidades precisas y SKUs pendientes de consulta por fuente.
type Plan struct {
	PreciseQty   decimal.Decimal
	FallbackSKUs []string
}

// Collect separa las resoluciones en un Plan. Los SKUs de fallback conservan el orden
// de aparición y no se repiten (la consulta por lote filtra por conjunto).
func Collect(resolutions []Resolution) Plan {
	plan := Plan{PreciseQty: decimal.Zero}
	seen := make(map[string]struct{})
	for _, r := range resolutions {
		if !r.Fallback {
			plan.PreciseQty = plan.PreciseQty.Add(r.Qty)
			continue
		}
		if _, ok := seen[r.SKU]; ok {
			continue
		}
		seen[r.SKU] = struct{}{}
		plan.FallbackSKUs = append(plan.FallbackSKUs, r.SKU)
	}
	return plan
}

// SumSourceItems suma la cantidad de cada registro, sin deduplicar por fuente.
func SumSourceItems(items []entity.SourceItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Quantity)
	}
	return total
}

// ChannelsMatchWebsite indica si algún canal es de tipo website con el código dado.
func ChannelsMatchWebsite(channels []entity.SalesChannel, websiteCode string) bool {
	for _, ch := range channels {
		if ch.MatchesWebsite(websiteCode) {
			return true
		}
	}
	return false
}
