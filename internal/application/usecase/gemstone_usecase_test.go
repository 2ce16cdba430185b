package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gemstone-api/internal/application/dto"
	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/memory"
)

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestGemstoneUseCase_CreateDerivesTotal(t *testing.T) {
	uc := usecase.NewGemstoneUseCase(memory.New().Gemstones())

	out, err := uc.Create(context.Background(), dto.CreateGemstoneRequest{
		Code: "SPH-1", Name: "Sphene", Shape: "Oval",
		Quantity: dec("4"), Weight: dec("3.333"), PricePerCarat: dec("10"), TotalPrice: dec("999"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 4, out.Quantity)
	assert.Equal(t, "33.33", out.TotalPrice.StringFixed(2))
}

func TestGemstoneUseCase_CreateValidation(t *testing.T) {
	uc := usecase.NewGemstoneUseCase(memory.New().Gemstones())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateGemstoneRequest{Code: "X", PricePerCarat: dec("1")})
	assert.ErrorIs(t, err, domain.ErrValidationMissing)

	_, err = uc.Create(ctx, dto.CreateGemstoneRequest{Code: "X", Weight: dec("1"), PricePerCarat: dec("1"), Quantity: dec("1.5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateGemstoneRequest{Code: "X", Weight: dec("-1"), PricePerCarat: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	for _, qty := range []string{"18446744073709551615", "2147483648", "-1"} {
		_, err = uc.Create(ctx, dto.CreateGemstoneRequest{Code: "X", Weight: dec("1"), PricePerCarat: dec("1"), Quantity: dec(qty)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, qty)
	}

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGemstoneUseCase_UpdateKeepsImageAndCreation(t *testing.T) {
	uc := usecase.NewGemstoneUseCase(memory.New().Gemstones())
	ctx := context.Background()
	img := "sphene.jpg"

	created, err := uc.Create(ctx, dto.CreateGemstoneRequest{
		Code: "SPH-1", Weight: dec("2"), PricePerCarat: dec("10"), ImageURL: &img,
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, dto.UpdateGemstoneRequest{
		Code: "SPH-1", Name: "Sphene", Weight: dec("1.5"), PricePerCarat: dec("10"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, img, *updated.ImageURL)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "15.00", updated.TotalPrice.StringFixed(2))

	_, err = uc.Update(ctx, "missing", dto.UpdateGemstoneRequest{Code: "X", Weight: dec("1"), PricePerCarat: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGemstoneUseCase_SearchTrimsTerm(t *testing.T) {
	uc := usecase.NewGemstoneUseCase(memory.New().Gemstones())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateGemstoneRequest{Code: "SPH-1", Name: "Sphene", Weight: dec("2.75"), PricePerCarat: dec("10")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateGemstoneRequest{Code: "RB-1", Name: "Ruby", Weight: dec("1"), PricePerCarat: dec("10")})
	require.NoError(t, err)

	out, err := uc.Search(ctx, "  sphene ")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "SPH-1", out[0].Code)

	out, err = uc.Search(ctx, "2.75")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestSaleUseCase_DeleteMissing(t *testing.T) {
	uc := usecase.NewSaleUseCase(memory.New().Sales())

	assert.ErrorIs(t, uc.Delete(context.Background(), "nope"), domain.ErrNotFound)
	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
