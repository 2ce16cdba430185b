package pdf

// Layout alturas en milímetros de cada bloque del estado de ventas.
// PlanStatement y el render usan los mismos valores, así el plan coincide con lo dibujado.
type Layout struct {
	PageHeight   float64
	MarginTop    float64
	MarginBottom float64
	Slack        float64 // holgura para que Maroto no corte la página por redondeos

	TitleHeight        float64 // título, emisor, fecha y periodo (solo primera página)
	SummaryHeight      float64 // recuadro de resumen (solo primera página)
	ColumnHeaderHeight float64 // se repite en cada página con filas
	RowHeight          float64
	ClosingHeight      float64 // línea + gran total tras la última fila
	FooterHeight       float64 // "Page X of N" + aviso de confidencialidad
}

// DefaultLayout A4 con márgenes de 10 mm.
func DefaultLayout() Layout {
	return Layout{
		PageHeight:         297,
		MarginTop:          10,
		MarginBottom:       10,
		Slack:              2,
		TitleHeight:        31,
		SummaryHeight:      24,
		ColumnHeaderHeight: 8,
		RowHeight:          7,
		ClosingHeight:      12,
		FooterHeight:       12,
	}
}

// body alto disponible para contenido por encima del pie.
func (l Layout) body() float64 {
	return l.PageHeight - l.MarginTop - l.MarginBottom - l.Slack - l.FooterHeight
}

// PagePlan contenido de una página. Las filas son el rango [First, Last) del listado.
type PagePlan struct {
	Number       int
	Intro        bool // título y resumen
	ColumnHeader bool
	First, Last  int
	Closing      bool
	Used         float64 // mm ocupados antes del relleno y el pie
}

// Rows cantidad de filas de datos en la página.
func (p PagePlan) Rows() int { return p.Last - p.First }

// StatementPlan resultado de la primera pasada: páginas con sus filas asignadas.
type StatementPlan struct {
	Layout Layout
	Pages  []PagePlan
}

// TotalPages N en "Page X of N".
func (p StatementPlan) TotalPages() int { return len(p.Pages) }

// PlanStatement reparte rows filas en páginas. Una fila que no cabe abre página nueva con
// cabecera de columnas; el cierre con el gran total va tras la última fila o en una página propia.
func PlanStatement(rows int, l Layout) StatementPlan {
	limit := l.body()
	cur := PagePlan{Number: 1, Intro: true, ColumnHeader: true}
	cur.Used = l.TitleHeight + l.SummaryHeight + l.ColumnHeaderHeight

	var pages []PagePlan
	for i := 0; i < rows; i++ {
		if cur.Rows() > 0 && cur.Used+l.RowHeight > limit {
			pages = append(pages, cur)
			cur = PagePlan{Number: cur.Number + 1, ColumnHeader: true, First: i, Last: i, Used: l.ColumnHeaderHeight}
		}
		cur.Last = i + 1
		cur.Used += l.RowHeight
	}
	if cur.Used+l.ClosingHeight > limit {
		pages = append(pages, cur)
		cur = PagePlan{Number: cur.Number + 1, First: rows, Last: rows}
	}
	cur.Closing = true
	cur.Used += l.ClosingHeight
	pages = append(pages, cur)

	return StatementPlan{Layout: l, Pages: pages}
}
