package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellRequest body para POST /api/gemstones/sell.
type SellRequest struct {
	GemstoneID   string           `json:"gemstone_id"`
	Quantity     *decimal.Decimal `json:"quantity"`
	CaratSold    *decimal.Decimal `json:"carat_sold"`
	SellingPrice *decimal.Decimal `json:"selling_price"`
	TotalAmount  *decimal.Decimal `json:"total_amount"`
}

// SellResponse respuesta de una venta exitosa. El archivo de la factura puede no existir todavía.
type SellResponse struct {
	Message string `json:"message"`
	Invoice string `json:"invoice"`
	SaleID  string `json:"sale_id"`
	Outcome string `json:"outcome"`
}

// SaleResponse venta expuesta por la API.
type SaleResponse struct {
	ID           string          `json:"id"`
	GemstoneID   string          `json:"gemstone_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Shape        string          `json:"shape"`
	Quantity     int             `json:"quantity"`
	CaratSold    decimal.Decimal `json:"carat_sold"`
	MarkingPrice decimal.Decimal `json:"marking_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ImageURL     *string         `json:"image_url"`
	Remark       *string         `json:"remark"`
	SoldAt       time.Time       `json:"sold_at"`
}
