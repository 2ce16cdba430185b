package pdf

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gemstone-api/internal/application/sales"
	"github.com/jhoicas/gemstone-api/internal/application/statement"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	domstatement "github.com/jhoicas/gemstone-api/internal/domain/statement"
)

var pageObject = regexp.MustCompile(`/Type /Page[^s]`)

func countPages(pdf []byte) int {
	return len(pageObject.FindAll(pdf, -1))
}

func statementDoc(n int) statement.Document {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	list := make([]*entity.Sale, 0, n)
	for i := 0; i < n; i++ {
		list = append(list, &entity.Sale{
			ID:           fmt.Sprintf("s-%03d", i),
			Code:         fmt.Sprintf("SPH-%03d", i),
			Name:         "Sphene",
			Shape:        "Oval",
			Quantity:     1,
			CaratSold:    decimal.RequireFromString("1.25"),
			MarkingPrice: decimal.RequireFromString("150.00"),
			SellingPrice: decimal.RequireFromString("160.00"),
			TotalAmount:  decimal.RequireFromString("200.00"),
			SoldAt:       now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return statement.Document{
		Period:      domstatement.ResolveRolling("year", now),
		Sales:       list,
		Summary:     domstatement.Summarize(list),
		GeneratedAt: now,
	}
}

func TestStatementRenderer_PageCountMatchesPlan(t *testing.T) {
	r := NewStatementRenderer(Options{})

	for _, n := range []int{0, 1, 28, 30, 100} {
		t.Run(fmt.Sprintf("%d ventas", n), func(t *testing.T) {
			out, err := r.RenderStatement(context.Background(), statementDoc(n))
			require.NoError(t, err)
			require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
			assert.Equal(t, PlanStatement(n, DefaultLayout()).TotalPages(), countPages(out))
		})
	}
}

func TestStatementRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStatementRenderer(Options{}).RenderStatement(ctx, statementDoc(3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvoiceGenerator_SinglePage(t *testing.T) {
	g := NewInvoiceGenerator(Options{Currency: "$"})

	out, err := g.GenerateSaleInvoicePDF(context.Background(), sales.InvoiceData{
		SaleID:       "sale-1",
		Code:         "SPH-001",
		Name:         "Sphene",
		Shape:        "Oval",
		Quantity:     2,
		CaratSold:    decimal.RequireFromString("1.75"),
		SellingPrice: decimal.RequireFromString("160"),
		TotalAmount:  decimal.RequireFromString("280"),
		IssuedAt:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, 1, countPages(out))
}

func TestFormatter(t *testing.T) {
	f := newFormatter("$")

	assert.Equal(t, "$1,240.25", f.money(decimal.RequireFromString("1240.25")))
	assert.Equal(t, "0.00", f.fixed(decimal.Zero))
	assert.Equal(t, "3.33", f.fixed(decimal.RequireFromString("3.333")))
	assert.Equal(t, "-1,234.50", f.fixed(decimal.RequireFromString("-1234.5")))
	assert.Equal(t, "0.00", f.fixed(decimal.RequireFromString("-0.001")))
}

func TestFormatter_LargeAmountsStayExact(t *testing.T) {
	f := newFormatter("$")

	assert.Equal(t, "$12,345,678,901,234,567.89", f.money(decimal.RequireFromString("12345678901234567.89")))
	assert.Equal(t, "$18,446,744,073,709,551,615.00", f.money(decimal.RequireFromString("18446744073709551615")))
	assert.Equal(t, "123,456,789,012,345,678,901.50", f.fixed(decimal.RequireFromString("123456789012345678901.499")))
}
