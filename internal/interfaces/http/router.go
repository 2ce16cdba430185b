package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	GemstoneUC *usecase.GemstoneUseCase
	SaleUC     *usecase.SaleUseCase
	Sell       *sales.SellUseCase
	Statements *statement.UseCase
	Documents  sales.DocumentSink
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Lotes y venta
	gemstones := api.Group("/gemstones")
	gemstoneHandler := NewGemstoneHandler(deps.GemstoneUC, deps.Sell, log)
	gemstones.Post("/add", gemstoneHandler.Create)
	gemstones.Get("/all", gemstoneHandler.List)
	gemstones.Get("/search", gemstoneHandler.Search)
	gemstones.Post("/sell", gemstoneHandler.Sell)
	gemstones.Put("/:id", gemstoneHandler.Update)
	gemstones.Delete("/:id", gemstoneHandler.Delete)

	// Ventas
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.Statements, log)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/download-statement/:range", saleHandler.DownloadStatement)
	salesGroup.Delete("/:id", saleHandler.Delete)

	// Comprobantes y estado por rango móvil ("statement" se registra antes que ":filename")
	invoices := app.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.Documents, deps.Statements, log)
	invoices.Get("/statement", invoiceHandler.Statement)
	invoices.Get("/:filename", invoiceHandler.Download)
}
