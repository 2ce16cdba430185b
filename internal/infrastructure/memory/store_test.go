package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/domain/entity"
	"github.com/jhoicas/gemstone-api/internal/domain/repository"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/memory"
)

func TestRunSale_RollbackRestoresState(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Gemstones().Create(ctx, &entity.Gemstone{
		ID: "g1", Code: "SPH-1", Quantity: 3, Weight: decimal.RequireFromString("10.5"),
	}))

	boom := errors.New("falla de escritura")
	err := store.RunSale(ctx, func(gems repository.GemstoneRepository, sales repository.SaleRepository) error {
		require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s1", GemstoneID: "g1"}))
		require.NoError(t, gems.Delete(ctx, "g1"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	gem, err := store.Gemstones().GetByID(ctx, "g1")
	require.NoError(t, err)
	require.NotNil(t, gem)
	assert.True(t, gem.Weight.Equal(decimal.RequireFromString("10.5")))

	sale, err := store.Sales().GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestRunSale_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := memory.New().RunSale(ctx, func(repository.GemstoneRepository, repository.SaleRepository) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSaleRepo_ListBetweenInclusiveAndOrdered(t *testing.T) {
	ctx := context.Background()
	repo := memory.New().Sales()
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Create(ctx, &entity.Sale{ID: id, SoldAt: base.AddDate(0, 0, i*10)}))
	}

	asc, err := repo.ListBetween(ctx, base, base.AddDate(0, 0, 20), repository.SortAsc)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{asc[0].ID, asc[1].ID, asc[2].ID})

	desc, err := repo.ListBetween(ctx, base, base.AddDate(0, 0, 20), repository.SortDesc)
	require.NoError(t, err)
	assert.Equal(t, "c", desc[0].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d", all[0].ID)
}

func TestGemstoneRepo_SearchAndMissingRows(t *testing.T) {
	ctx := context.Background()
	repo := memory.New().Gemstones()
	require.NoError(t, repo.Create(ctx, &entity.Gemstone{ID: "g1", Code: "SPH-01", Name: "Sphene", Shape: "Oval", Weight: decimal.RequireFromString("2.75")}))
	require.NoError(t, repo.Create(ctx, &entity.Gemstone{ID: "g2", Code: "TRM-07", Name: "Tourmaline", Shape: "Cushion", Weight: decimal.RequireFromString("4")}))

	found, err := repo.Search(ctx, "  sphene ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "g1", found[0].ID)

	found, err = repo.Search(ctx, "2.75")
	require.NoError(t, err)
	require.Len(t, found, 1)

	gem, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, gem)

	assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateStock(ctx, &entity.Gemstone{ID: "nope"}), domain.ErrNotFound)
}
