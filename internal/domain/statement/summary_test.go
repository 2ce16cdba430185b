package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gemstone-api/internal/domain/entity"
)

func TestSummarize(t *testing.T) {
	sales := []*entity.Sale{
		{CaratSold: decimal.RequireFromString("1.10"), TotalAmount: decimal.RequireFromString("100.005")},
		{CaratSold: decimal.RequireFromString("2.205"), TotalAmount: decimal.RequireFromString("250.50")},
		{CaratSold: decimal.RequireFromString("0.7"), TotalAmount: decimal.RequireFromString("99.99")},
	}

	s := Summarize(sales)

	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "4.005", s.TotalCarat.String())
	assert.Equal(t, "450.495", s.GrandTotal.String())
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Count)
	assert.Equal(t, "0.00", s.TotalCarat.StringFixed(2))
	assert.Equal(t, "0.00", s.GrandTotal.StringFixed(2))
}
