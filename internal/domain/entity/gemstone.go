package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gemstone representa un lote de gemas del inventario (mismo código, forma y precio por quilate).
// TotalPrice se mantiene igual a Weight × PricePerCarat redondeado a 2 decimales.
type Gemstone struct {
	ID            string
	Code          string // código visible, no necesariamente único
	Name          string
	Shape         string
	Quantity      int             // piezas en el lote
	Weight        decimal.Decimal // quilates
	PricePerCarat decimal.Decimal
	TotalPrice    decimal.Decimal
	ImageURL      *string
	Remark        *string
	CreatedAt     time.Time
}

// LotValue calcula el valor del lote para un peso dado al precio por quilate del lote.
func (g *Gemstone) LotValue(weight decimal.Decimal) decimal.Decimal {
	return weight.Mul(g.PricePerCarat).Round(2)
}
