// Package pdf genera los documentos PDF del inventario con Maroto v2:
// el comprobante de cada venta y el estado de ventas paginado.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorText    = &props.Color{Red: 51, Green: 51, Blue: 51}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorShade   = &props.Color{Red: 245, Green: 245, Blue: 245}
	colorBorder  = &props.Color{Red: 221, Green: 221, Blue: 221}
)

// ── Comprobante de venta ──────────────────────────────────────────────────────

var _ sales.InvoicePDFGenerator = (*InvoiceGenerator)(nil)

// InvoiceGenerator implementa sales.InvoicePDFGenerator: una sola página con los datos de la venta.
type InvoiceGenerator struct {
	opts Options
	num  formatter
}

// NewInvoiceGenerator construye el generador.
func NewInvoiceGenerator(opts Options) *InvoiceGenerator {
	opts = opts.withDefaults()
	return &InvoiceGenerator{opts: opts, num: newFormatter(opts.Currency)}
}

// GenerateSaleInvoicePDF genera el PDF y devuelve sus bytes.
func (g *InvoiceGenerator) GenerateSaleInvoicePDF(ctx context.Context, data sales.InvoiceData) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Gemstone Sale Invoice", true).
		WithAuthor(g.opts.Issuer, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(
		text.NewRow(12, "Gemstone Sale Invoice", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary,
		}),
		text.NewRow(6, g.opts.Issuer, props.Text{Size: 9, Align: align.Center, Color: colorGray}),
		line.NewRow(6, props.Line{Color: colorPrimary, Thickness: 0.4}),
	)
	for _, f := range g.invoiceFields(data) {
		m.AddRows(fieldRow(f[0], f[1]))
	}
	m.AddRows(line.NewRow(6, props.Line{Color: colorBorder, Thickness: 0.3}))
	if data.SaleID != "" {
		m.AddRows(text.NewRow(5, "Sale reference: "+data.SaleID, props.Text{Size: 8, Color: colorGray}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *InvoiceGenerator) invoiceFields(d sales.InvoiceData) [][2]string {
	return [][2]string{
		{"Gemstone Code", d.Code},
		{"Name", d.Name},
		{"Shape", d.Shape},
		{"Quantity", strconv.Itoa(d.Quantity)},
		{"Weight (Carat)", d.CaratSold.String()},
		{"Price/Carat", g.num.money(d.SellingPrice)},
		{"Total Amount", g.num.money(d.TotalAmount)},
		{"Sold Date", d.IssuedAt.Format("2006-01-02")},
	}
}

func fieldRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(label+":", props.Text{Style: fontstyle.Bold, Size: 11, Top: 1, Color: colorText})),
		col.New(8).Add(text.New(value, props.Text{Size: 11, Top: 1, Color: colorText})),
	)
}
