package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stock-finder/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockQuery *inventory.StockQueryUseCase
	JWTSecret  string
	JWTIssuer  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	stock := api.Group("/stock", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	stockHandler := NewStockHandler(deps.StockQuery)
	stock.Post("/batch", stockHandler.GetBatch)
	stock.Get("/:sku", stockHandler.GetBySKU)
}
