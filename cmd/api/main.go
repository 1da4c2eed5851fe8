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

	"github.com/jhoicas/ScanStock-api/internal/application/attribution"
	"github.com/jhoicas/ScanStock-api/internal/application/auth"
	"github.com/jhoicas/ScanStock-api/internal/application/ledger"
	"github.com/jhoicas/ScanStock-api/internal/application/report"
	"github.com/jhoicas/ScanStock-api/internal/application/stats"
	"github.com/jhoicas/ScanStock-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/ScanStock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ScanStock-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/ScanStock-api/internal/interfaces/http"
	"github.com/jhoicas/ScanStock-api/pkg/config"
	"github.com/jhoicas/ScanStock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Backend de persistencia: archivo JSON plano o fila jsonb en PostgreSQL.
	// Ambos cumplen el mismo contrato load-full/replace-full atómico.
	var backend store.Backend
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := store.NewPostgresPool(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		backend, err = store.NewPostgresBackend(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar backend postgres")
		}
	default:
		backend = store.NewFileBackend(cfg.Store.Path)
	}

	st, err := store.Open(ctx, backend)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir el store")
	}

	productRepo := store.NewProductRepository(st)
	warehousemanRepo := store.NewWarehousemanRepository(st)

	attrSvc := attribution.NewService(productRepo)
	ledgerUC := ledger.NewUseCase(productRepo, attrSvc, log.Zerolog())
	productUC := usecase.NewProductUseCase(productRepo)
	statsUC := stats.NewAggregator(productRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := report.NewPDFUseCase(productRepo, pdfGenerator)
	authUC := auth.NewAuthUseCase(warehousemanRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ScanStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		Ledger:      ledgerUC,
		StatsUC:     statsUC,
		ReportUC:    reportUC,
		ProductRepo: productRepo,
		JWTSecret:   cfg.JWT.Secret,
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
