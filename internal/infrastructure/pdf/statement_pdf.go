package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

// Grilla de 54 columnas: # | Date | Code | Name | Shape | Carat | Price/CT | Total.
const statementGrid = 54

var statementColumns = []struct {
	title string
	size  int
	align align.Type
}{
	{"#", 3, align.Left},
	{"Date", 8, align.Left},
	{"Code", 6, align.Left},
	{"Name", 9, align.Left},
	{"Shape", 6, align.Left},
	{"Carat", 6, align.Right},
	{"Price/CT", 8, align.Right},
	{"Total", 8, align.Right},
}

var _ statement.Renderer = (*StatementRenderer)(nil)

// StatementRenderer implementa statement.Renderer en dos pasadas: PlanStatement reparte las
// filas y luego cada página se dibuja con su pie "Page X of N" ya conociendo N.
type StatementRenderer struct {
	opts   Options
	num    formatter
	layout Layout
}

// NewStatementRenderer construye el renderer con DefaultLayout.
func NewStatementRenderer(opts Options) *StatementRenderer {
	opts = opts.withDefaults()
	return &StatementRenderer{opts: opts, num: newFormatter(opts.Currency), layout: DefaultLayout()}
}

// RenderStatement genera el PDF completo y devuelve sus bytes.
func (r *StatementRenderer) RenderStatement(ctx context.Context, doc statement.Document) ([]byte, error) {
	plan := PlanStatement(len(doc.Sales), r.layout)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(statementGrid).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(r.layout.MarginTop).WithBottomMargin(r.layout.MarginBottom).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Statement "+doc.Period.Label, true).
		WithAuthor(r.opts.Issuer, true).
		Build()

	m := maroto.New(cfg)
	for _, p := range plan.Pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddPages(page.New().Add(r.pageRows(doc, plan, p)...))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar estado de ventas: %w", err)
	}
	return out.GetBytes(), nil
}

func (r *StatementRenderer) pageRows(doc statement.Document, plan StatementPlan, p PagePlan) []core.Row {
	var rows []core.Row
	if p.Intro {
		rows = append(rows, r.introRows(doc)...)
	}
	if p.ColumnHeader {
		rows = append(rows, r.columnHeaderRow())
	}
	for i := p.First; i < p.Last; i++ {
		rows = append(rows, r.saleRow(i, doc.Sales[i], doc.GeneratedAt.Location()))
	}
	if p.Closing {
		rows = append(rows, r.closingRows(doc)...)
	}
	if gap := r.layout.body() - p.Used; gap > 0.01 {
		rows = append(rows, row.New(gap))
	}
	return append(rows, r.footerRows(p.Number, plan.TotalPages())...)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// introRows: título, emisor, fecha de generación y periodo. Suma TitleHeight + SummaryHeight.
func (r *StatementRenderer) introRows(doc statement.Document) []core.Row {
	loc := doc.GeneratedAt.Location()
	period := fmt.Sprintf("%s to %s",
		doc.Period.Start.In(loc).Format("2006-01-02"),
		doc.Period.End.In(loc).Format("2006-01-02"))

	summaryText := func(s string) core.Component {
		return text.New(s, props.Text{Size: 10, Top: 2, Left: 3, Color: colorText})
	}
	shaded := &props.Cell{BackgroundColor: colorShade}

	return []core.Row{
		// título
		text.NewRow(12, "SALES STATEMENT", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
		row.New(6).Add(
			col.New(27).Add(text.New(r.opts.Issuer, props.Text{Size: 10, Color: colorText})),
			col.New(27).Add(text.New("Generated: "+doc.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 10, Align: align.Right, Color: colorText,
			})),
		),
		row.New(6).Add(
			col.New(10).Add(text.New("Report Period:", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorText})),
			col.New(44).Add(text.New(period, props.Text{Size: 10, Color: colorText})),
		),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}),
		row.New(5),
		// resumen
		row.New(8).Add(
			col.New(statementGrid).Add(text.New("SUMMARY", props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 2, Left: 3, Color: colorPrimary,
			})),
		).WithStyle(shaded),
		row.New(10).Add(
			col.New(18).Add(summaryText("Total Transactions: "+strconv.Itoa(doc.Summary.Count))),
			col.New(18).Add(summaryText("Total Carat Sold: "+r.num.fixed(doc.Summary.TotalCarat)+" ct")),
			col.New(18).Add(text.New("Grand Total: "+r.num.money(doc.Summary.GrandTotal), props.Text{
				Size: 10, Top: 2, Right: 3, Align: align.Right, Color: colorText,
			})),
		).WithStyle(shaded),
		row.New(6),
	}
}

func (r *StatementRenderer) columnHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(statementColumns))
	for _, c := range statementColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.title, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(r.layout.ColumnHeaderHeight).Add(cols...).WithStyle(&props.Cell{
		BorderType:      border.Bottom,
		BorderColor:     colorBorder,
		BorderThickness: 0.3,
	})
}

// saleRow: i es el índice global, la numeración sigue entre páginas.
func (r *StatementRenderer) saleRow(i int, s *entity.Sale, loc *time.Location) core.Row {
	values := []string{
		strconv.Itoa(i + 1),
		s.SoldAt.In(loc).Format("2006-01-02"),
		s.Code,
		s.Name,
		s.Shape,
		r.num.fixed(s.CaratSold),
		r.num.money(s.MarkingPrice),
		r.num.money(s.TotalAmount),
	}
	cols := make([]core.Col, 0, len(values))
	for k, v := range values {
		c := statementColumns[k]
		cols = append(cols, col.New(c.size).Add(text.New(v, props.Text{
			Size: 9, Align: c.align, Color: colorText, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	rw := row.New(r.layout.RowHeight).Add(cols...)
	if i%2 == 0 {
		rw = rw.WithStyle(&props.Cell{BackgroundColor: colorShade})
	}
	return rw
}

func (r *StatementRenderer) closingRows(doc statement.Document) []core.Row {
	return []core.Row{
		line.NewRow(2, props.Line{Color: colorText, Thickness: 0.3}),
		text.NewRow(10, "Grand Total: "+r.num.money(doc.Summary.GrandTotal), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 3, Right: 1,
		}),
	}
}

func (r *StatementRenderer) footerRows(number, total int) []core.Row {
	small := props.Text{Size: 8, Align: align.Center, Color: colorText}
	return []core.Row{
		row.New(2),
		text.NewRow(5, pageLabel(number, total), small),
		text.NewRow(5, confidentialLabel(r.opts.Issuer), small),
	}
}

func pageLabel(number, total int) string {
	return fmt.Sprintf("Page %d of %d", number, total)
}

func confidentialLabel(issuer string) string {
	return "Confidential - " + issuer
}
