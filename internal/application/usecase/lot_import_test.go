package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gemstone-api/internal/application/usecase"
	"github.com/jhoicas/gemstone-api/internal/domain"
	"github.com/jhoicas/gemstone-api/internal/infrastructure/memory"
)

const lotsCSV = "\uFEFFCode,Name,Shape,Quantity,Weight,Price_Per_Carat,Remark\n" +
	"SPH-1,Sphene,Oval,3,2.5,150.333,\n" +
	"SPH-2,Sphene,Pear,1,,90,sin peso\n" +
	"RB-1,Ruby,Cushion,2,1.25,400,calentado\n"

func TestParseLotsCSV(t *testing.T) {
	rows, err := usecase.ParseLotsCSV(strings.NewReader(lotsCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "SPH-1", rows[0].Code)
	require.NotNil(t, rows[0].Weight)
	assert.Equal(t, "2.5", rows[0].Weight.String())
	assert.Nil(t, rows[0].Remark)
	assert.Nil(t, rows[1].Weight)
	require.NotNil(t, rows[2].Remark)
	assert.Equal(t, "calentado", *rows[2].Remark)
}

func TestParseLotsCSV_Errors(t *testing.T) {
	_, err := usecase.ParseLotsCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrValidationMissing)

	_, err = usecase.ParseLotsCSV(strings.NewReader("code,name\nX,Y\n"))
	assert.ErrorIs(t, err, domain.ErrValidationMissing)

	_, err = usecase.ParseLotsCSV(strings.NewReader("code,weight,price_per_carat\nX,abc,1\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportLots_SkipsInvalidRows(t *testing.T) {
	store := memory.New()
	uc := usecase.NewGemstoneUseCase(store.Gemstones())
	rows, err := usecase.ParseLotsCSV(strings.NewReader(lotsCSV))
	require.NoError(t, err)

	res, err := uc.ImportLots(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 3, res.Failed[0].Line)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
