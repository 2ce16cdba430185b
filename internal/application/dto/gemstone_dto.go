package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGemstoneRequest body para POST /api/gemstones/add.
// Los números se aceptan como número JSON o como string ("12.5").
// total_price se ignora: siempre se deriva de weight × price_per_carat.
type CreateGemstoneRequest struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Shape         string           `json:"shape"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Weight        *decimal.Decimal `json:"weight"`
	PricePerCarat *decimal.Decimal `json:"price_per_carat"`
	TotalPrice    *decimal.Decimal `json:"total_price,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Remark        *string          `json:"remark,omitempty"`
}

// UpdateGemstoneRequest body para PUT /api/gemstones/:id (mismos campos que el alta).
type UpdateGemstoneRequest = CreateGemstoneRequest

// GemstoneResponse lote expuesto por la API.
type GemstoneResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Shape         string          `json:"shape"`
	Quantity      int             `json:"quantity"`
	Weight        decimal.Decimal `json:"weight"`
	PricePerCarat decimal.Decimal `json:"price_per_carat"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	ImageURL      *string         `json:"image_url"`
	Remark        *string         `json:"remark"`
	CreatedAt     time.Time       `json:"created_at"`
}
