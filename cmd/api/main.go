package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/memory"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/gemstone-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/gemstone-api/internal/interfaces/http"
	"github.com/jhoicas/gemstone-api/pkg/config"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("invoice_sink", cfg.Invoice.Sink).
		Msg("iniciando aplicación")

	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Report.Timezone).Msg("zona horaria de reportes")
	}

	ctx := context.Background()

	// Almacén: PostgreSQL o memoria (desarrollo)
	var (
		gemRepo  repository.GemstoneRepository
		saleRepo repository.SaleRepository
		txRunner sales.TxRunner
	)
	switch cfg.Store.Driver {
	case "memory":
		store := memory.New()
		gemRepo, saleRepo, txRunner = store.Gemstones(), store.Sales(), store
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		gemRepo = postgres.NewGemstoneRepository(pool)
		saleRepo = postgres.NewSaleRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
	}

	// Destino de comprobantes
	var documents sales.DocumentSink
	switch cfg.Invoice.Sink {
	case "s3":
		s3Sink, err := storage.NewS3Sink(ctx, cfg.Storage, log.Named("storage"))
		if err != nil {
			log.Fatal().Err(err).Msg("storage S3")
		}
		if err := s3Sink.EnsureBucket(ctx); err != nil {
			log.Fatal().Err(err).Str("bucket", cfg.Storage.Bucket).Msg("bucket de comprobantes")
		}
		documents = s3Sink
	default:
		localSink, err := storage.NewLocalSink(cfg.Invoice.Dir)
		if err != nil {
			log.Fatal().Err(err).Msg("directorio de comprobantes")
		}
		documents = localSink
	}

	recorder := metrics.NewRecorder(true)
	pdfOpts := infrapdf.Options{Issuer: cfg.Report.Issuer, Currency: cfg.Report.Currency}

	emitter := sales.NewAsyncInvoiceEmitter(
		infrapdf.NewInvoiceGenerator(pdfOpts), documents, log.Named("invoice"), recorder,
	)
	sellUC := sales.NewSellUseCase(txRunner, emitter, log.Named("sales"),
		sales.WithMetrics(recorder),
		sales.WithRejectOversell(cfg.Sale.RejectOversell),
	)
	statementUC := statement.NewUseCase(saleRepo, infrapdf.NewStatementRenderer(pdfOpts), recorder, loc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http"), recorder))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Gemstone Inventory API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		GemstoneUC: usecase.NewGemstoneUseCase(gemRepo),
		SaleUC:     usecase.NewSaleUseCase(saleRepo),
		Sell:       sellUC,
		Statements: statementUC,
		Documents:  documents,
		Log:        log.Named("http"),
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
	// Las facturas en curso terminan antes de cerrar el pool.
	emitter.Wait()

	log.Info().Msg("aplicación detenida")
}
