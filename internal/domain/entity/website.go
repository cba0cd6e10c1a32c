package entity

// DefaultWebsiteID scope "default" (sin website). En ese scope la asignación por canal no aplica.
const DefaultWebsiteID = 0

// Website sitio de venta, identificado por ID numérico y con código único.
type Website struct {
	ID   int
	Code string
	Name string
}
