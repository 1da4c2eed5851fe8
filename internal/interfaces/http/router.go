package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanStock-api/internal/application/auth"
	"github.com/jhoicas/ScanStock-api/internal/application/ledger"
	"github.com/jhoicas/ScanStock-api/internal/application/report"
	"github.com/jhoicas/ScanStock-api/internal/application/stats"
	"github.com/jhoicas/ScanStock-api/internal/application/usecase"
	"github.com/jhoicas/ScanStock-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	Ledger      *ledger.UseCase
	StatsUC     *stats.Aggregator
	ReportUC    *report.PDFUseCase
	ProductRepo repository.ProductRepository
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/report.pdf", reportHandler.ProductListPDF)
	products.Get("/barcode/:code", productHandler.GetByBarcode)

	// Stocks (protegido): delta individual y guardado de sesión
	stockHandler := NewStockHandler(deps.Ledger, deps.ProductRepo)
	products.Post("/:id/stocks/:stockId/delta", stockHandler.ApplyDelta)
	products.Post("/:id/reconcile", stockHandler.Reconcile)

	// Statistics (protegido)
	statsHandler := NewStatisticsHandler(deps.StatsUC)
	protected.Get("/statistics/:warehousemanId", statsHandler.Get)
}
