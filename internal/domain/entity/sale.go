package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta contra un lote.
// Los datos del lote se copian al momento de la venta: el lote puede eliminarse después.
type Sale struct {
	ID           string
	GemstoneID   string
	Code         string
	Name         string
	Shape        string
	ImageURL     *string
	Remark       *string
	Quantity     int
	CaratSold    decimal.Decimal
	MarkingPrice decimal.Decimal // precio por quilate del lote al vender
	SellingPrice decimal.Decimal
	TotalAmount  decimal.Decimal // tal como lo envía el cliente
	SoldAt       time.Time
}
