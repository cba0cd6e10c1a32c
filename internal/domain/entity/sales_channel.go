package entity

// SalesChannelTypeWebsite único tipo de canal relevante para el cálculo de stock vendible.
const SalesChannelTypeWebsite = "website"

// SalesChannel canal de venta (tipo, código) asignado a una stock.
type SalesChannel struct {
	Type string
	Code string
}

// MatchesWebsite indica si el canal es de tipo website con el código dado.
func (c SalesChannel) MatchesWebsite(code string) bool {
	return c.Type == SalesChannelTypeWebsite && c.Code == code
}
