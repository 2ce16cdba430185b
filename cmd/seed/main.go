// seed importa lotes de gemas desde un CSV exportado de la planilla de inventario.
//
// Uso: go run ./cmd/seed --file lotes.csv [--charset latin1] [--dry-run]
// Cabecera esperada: code,name,shape,quantity,weight,price_per_carat,image_url,remark
// Usa el mismo almacén que la API (STORE_DRIVER, DATABASE_URL, DB_HOST...).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/memory"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gemstone-api/pkg/config"
	"github.com/jhoicas/gemstone-api/pkg/logger"
)

func main() {
	file := pflag.StringP("file", "f", "lotes.csv", "CSV de lotes")
	charset := pflag.String("charset", "utf-8", "codificación del CSV: utf-8 | latin1")
	dryRun := pflag.Bool("dry-run", false, "validar sin escribir (usa almacén en memoria)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name}).Named("seed")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(*charset) {
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(f, charmap.Windows1252.NewDecoder())
	}

	rows, err := usecase.ParseLotsCSV(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	var repo repository.GemstoneRepository
	if *dryRun || cfg.Store.Driver == "memory" {
		repo = memory.New().Gemstones()
	} else {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo = postgres.NewGemstoneRepository(pool)
	}

	res, err := usecase.NewGemstoneUseCase(repo).ImportLots(ctx, rows)
	for _, fail := range res.Failed {
		log.Warn().Int("line", fail.Line).Err(fail.Err).Msg("fila rechazada")
	}
	if err != nil {
		log.Error().Err(err).Int("created", res.Created).Msg("importación interrumpida")
		os.Exit(1)
	}
	log.Info().
		Int("rows", len(rows)).
		Int("created", res.Created).
		Int("rejected", len(res.Failed)).
		Bool("dry_run", *dryRun).
		Msg("importación terminada")
}
