// Package statement arma el estado de ventas de un periodo y lo entrega como PDF.
package statement

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
	domstatement "github.com/jhoicas/gemstone-api/internal/domain/statement"
)

// Document datos del estado de ventas que se imprimen.
type Document struct {
	Period      domstatement.Period
	Sales       []*entity.Sale
	Summary     domstatement.Summary
	GeneratedAt time.Time
}

// Renderer genera el PDF del estado de ventas.
type Renderer interface {
	RenderStatement(ctx context.Context, doc Document) ([]byte, error)
}

// Metrics latencia de generación de estados.
type Metrics interface {
	ObserveStatement(kind string, rows int, elapsed time.Duration)
}

// Result PDF listo para descargar.
type Result struct {
	PDF      []byte
	Filename string
	Summary  domstatement.Summary
	Period   domstatement.Period
}

// UseCase resuelve el periodo, consulta las ventas, calcula totales y renderiza.
type UseCase struct {
	sales    repository.SaleRepository
	renderer Renderer
	metrics  Metrics
	loc      *time.Location
	now      func() time.Time
}

// NewUseCase construye el caso de uso. loc es la zona horaria de los periodos calendario (nil = Local).
func NewUseCase(sales repository.SaleRepository, renderer Renderer, metrics Metrics, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{sales: sales, renderer: renderer, metrics: metrics, loc: loc, now: time.Now}
}

// WithClock reemplaza time.Now (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Rolling estado para month | six_months | year, más recientes primero.
func (uc *UseCase) Rolling(ctx context.Context, token string) (*Result, error) {
	now := uc.now().In(uc.loc)
	return uc.build(ctx, "rolling", domstatement.ResolveRolling(token, now), repository.SortDesc, now)
}

// Calendar estado para last-month | last-6-months | last-year, en orden cronológico.
func (uc *UseCase) Calendar(ctx context.Context, token string) (*Result, error) {
	now := uc.now().In(uc.loc)
	return uc.build(ctx, "calendar", domstatement.ResolveCalendar(token, now), repository.SortAsc, now)
}

func (uc *UseCase) build(ctx context.Context, kind string, period domstatement.Period, order repository.SortOrder, now time.Time) (*Result, error) {
	period.Label = sanitizeLabel(period.Label)

	list, err := uc.sales.ListBetween(ctx, period.Start, period.End, order)
	if err != nil {
		return nil, fmt.Errorf("statement: consultar ventas: %w", err)
	}

	doc := Document{
		Period:      period,
		Sales:       list,
		Summary:     domstatement.Summarize(list),
		GeneratedAt: now,
	}

	started := time.Now()
	pdf, err := uc.renderer.RenderStatement(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("statement: generar PDF: %w", err)
	}
	if uc.metrics != nil {
		uc.metrics.ObserveStatement(kind, len(list), time.Since(started))
	}

	return &Result{
		PDF:      pdf,
		Filename: Filename(period.Label, now),
		Summary:  doc.Summary,
		Period:   period,
	}, nil
}

// Filename sales_statement_<rango>_<YYYYMMDD_HHmm>.pdf
func Filename(label string, at time.Time) string {
	return fmt.Sprintf("sales_statement_%s_%s.pdf", sanitizeLabel(label), at.Format("20060102_1504"))
}

var unsafeLabel = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// sanitizeLabel la etiqueta viaja en Content-Disposition: solo letras, dígitos, '_' y '-'.
func sanitizeLabel(label string) string {
	clean := unsafeLabel.ReplaceAllString(label, "_")
	if clean == "" {
		return "all"
	}
	return clean
}
