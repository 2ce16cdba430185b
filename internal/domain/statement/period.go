// Package statement resuelve periodos de reporte y calcula los totales de un estado de ventas.
package statement

import (
	"strings"
	"time"
)

// Tokens de rango móvil (terminan en "ahora").
const (
	RangeMonth     = "month"
	RangeSixMonths = "six_months"
	RangeYear      = "year"
)

// Tokens de rango calendario.
const (
	RangeLastMonth   = "last-month"
	RangeLastSix     = "last-6-months"
	RangeLastYear    = "last-year"
	defaultRangeName = "all"
)

// Period rango de fechas concreto [Start, End] con la etiqueta usada en título y nombre de archivo.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
}

// Contains indica si t cae dentro del periodo (ambos extremos incluidos).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ResolveRolling resuelve month | six_months | year a [now − n, now].
// Un token vacío o desconocido cubre desde 1970-01-01 hasta now.
func ResolveRolling(token string, now time.Time) Period {
	token = strings.TrimSpace(token)
	p := Period{Label: labelOf(token), End: now}
	switch token {
	case RangeMonth:
		p.Start = addMonths(now, -1)
	case RangeSixMonths:
		p.Start = addMonths(now, -6)
	case RangeYear:
		p.Start = addMonths(now, -12)
	default:
		p.Start = time.Date(1970, 1, 1, 0, 0, 0, 0, now.Location())
	}
	return p
}

// ResolveCalendar resuelve last-month | last-6-months | last-year a meses o años calendario completos.
// Un token vacío o desconocido cubre desde 2000-01-01 hasta now.
func ResolveCalendar(token string, now time.Time) Period {
	token = strings.TrimSpace(token)
	p := Period{Label: labelOf(token)}
	month := startOfMonth(now)
	switch token {
	case RangeLastMonth:
		p.Start = month.AddDate(0, -1, 0)
		p.End = month.Add(-time.Nanosecond)
	case RangeLastSix:
		p.Start = month.AddDate(0, -6, 0)
		p.End = month.AddDate(0, 1, 0).Add(-time.Nanosecond)
	case RangeLastYear:
		year := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		p.Start = year.AddDate(-1, 0, 0)
		p.End = year.Add(-time.Nanosecond)
	default:
		p.Start = time.Date(2000, 1, 1, 0, 0, 0, 0, now.Location())
		p.End = now
	}
	return p
}

func labelOf(token string) string {
	if token == "" {
		return defaultRangeName
	}
	return token
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// addMonths suma n meses conservando la hora; si el día no existe en el mes destino
// se usa el último día de ese mes (31-mar − 1 mes = 28/29-feb).
func addMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return target.AddDate(0, 0, day-1)
}
