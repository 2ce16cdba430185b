package statement

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

// Summary totales del estado de ventas.
type Summary struct {
	Count      int
	TotalCarat decimal.Decimal
	GrandTotal decimal.Decimal
}

// Summarize suma quilates e importes sin redondeo; el redondeo a 2 decimales es solo de presentación.
func Summarize(sales []*entity.Sale) Summary {
	s := Summary{TotalCarat: decimal.Zero, GrandTotal: decimal.Zero}
	for _, sale := range sales {
		s.Count++
		s.TotalCarat = s.TotalCarat.Add(sale.CaratSold)
		s.GrandTotal = s.GrandTotal.Add(sale.TotalAmount)
	}
	return s
}
