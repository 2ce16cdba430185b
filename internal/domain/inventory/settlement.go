package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

// Resultado de aplicar una venta sobre un lote.
const (
	OutcomeUpdated  = "updated"  // el lote sigue con stock
	OutcomeConsumed = "consumed" // el lote se agotó y se elimina
)

// MaxPieces tope de piezas de un lote o de una venta.
const MaxPieces = math.MaxInt32

var maxPieces = decimal.NewFromInt(MaxPieces)

// Pieces convierte una cantidad recibida como número en piezas.
// Solo acepta enteros en [0, MaxPieces]; IntPart descarta los bits altos fuera de int64.
func Pieces(d decimal.Decimal) (int, bool) {
	if !d.IsInteger() || d.IsNegative() || d.GreaterThan(maxPieces) {
		return 0, false
	}
	return int(d.IntPart()), true
}

// SaleLine cantidad vendida de un lote.
type SaleLine struct {
	Quantity  int
	CaratSold decimal.Decimal
}

// Settlement nuevo estado del lote tras la venta (servicio de dominio, sin I/O).
type Settlement struct {
	Outcome           string
	RemainingCarat    decimal.Decimal
	RemainingQuantity int
	TotalPrice        decimal.Decimal // Remaining × PricePerCarat, 2 decimales
}

// Consumed indica si el lote debe eliminarse.
func (s Settlement) Consumed() bool { return s.Outcome == OutcomeConsumed }

// Settle calcula el remanente del lote: peso − quilates vendidos y cantidad − piezas vendidas.
// Un remanente <= 0 en cualquiera de los dos marca el lote como agotado.
// Con rejectOversell, vender más de lo disponible devuelve domain.ErrInsufficientStock.
func Settle(lot *entity.Gemstone, line SaleLine, rejectOversell bool) (Settlement, error) {
	remainingCarat := lot.Weight.Sub(line.CaratSold)
	remainingQty := lot.Quantity - line.Quantity

	if rejectOversell && (remainingCarat.IsNegative() || remainingQty < 0) {
		return Settlement{}, domain.ErrInsufficientStock
	}

	if !remainingCarat.IsPositive() || remainingQty <= 0 {
		return Settlement{
			Outcome:           OutcomeConsumed,
			RemainingCarat:    remainingCarat,
			RemainingQuantity: remainingQty,
			TotalPrice:        decimal.Zero,
		}, nil
	}
	return Settlement{
		Outcome:           OutcomeUpdated,
		RemainingCarat:    remainingCarat,
		RemainingQuantity: remainingQty,
		TotalPrice:        lot.LotValue(remainingCarat),
	}, nil
}

// Apply copia el remanente sobre el lote.
func (s Settlement) Apply(lot *entity.Gemstone) {
	lot.Weight = s.RemainingCarat
	lot.Quantity = s.RemainingQuantity
	lot.TotalPrice = s.TotalPrice
}
