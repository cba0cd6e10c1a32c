package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/stock-finder/internal/application/inventory"
	"github.com/jhoicas/stock-finder/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-finder/internal/interfaces/http"
	"github.com/jhoicas/stock-finder/pkg/config"
	"github.com/jhoicas/stock-finder/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("manage_stock_default", cfg.Inventory.ManageStock).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	salableQtyUC := inventory.NewSalableQuantityUseCase(
		postgres.NewStockAssignmentRepository(pool),
		postgres.NewStockItemConfigRepository(pool),
		postgres.NewSalableQtyRepository(pool),
		postgres.NewSalesChannelRepository(pool),
		postgres.NewWebsiteRepository(pool),
	)
	stockFinder := inventory.NewStockFinder(
		salableQtyUC,
		postgres.NewSourceItemRepository(pool),
		inventory.NewConfigManageStock(postgres.NewConfigRepository(pool), cfg.Inventory.ManageStock),
		inventory.NewDefaultConstituentRegistry(productRepo),
		log,
	)
	stockQueryUC := inventory.NewStockQueryUseCase(productRepo, stockFinder, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Finder API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_unavailable", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockQuery: stockQueryUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
