package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanStatement_Empty(t *testing.T) {
	plan := PlanStatement(0, DefaultLayout())

	require.Equal(t, 1, plan.TotalPages())
	p := plan.Pages[0]
	assert.True(t, p.Intro)
	assert.True(t, p.ColumnHeader)
	assert.True(t, p.Closing)
	assert.Equal(t, 0, p.Rows())
}

func TestPlanStatement_MultiPage(t *testing.T) {
	l := DefaultLayout()
	plan := PlanStatement(100, l)

	require.Equal(t, 4, plan.TotalPages())
	assert.Equal(t, 28, plan.Pages[0].Rows())
	assert.Equal(t, 36, plan.Pages[1].Rows())
	assert.Equal(t, 36, plan.Pages[2].Rows())
	assert.Equal(t, 0, plan.Pages[3].Rows(), "el gran total no cabe y pasa a una página propia")

	next := 0
	for i, p := range plan.Pages {
		assert.Equal(t, i+1, p.Number)
		assert.Equal(t, next, p.First, "la numeración de filas continúa entre páginas")
		next = p.Last
		assert.Equal(t, i == 0, p.Intro)
		assert.Equal(t, p.Rows() > 0, p.ColumnHeader, "cabecera de columnas en cada página con filas")
		assert.Equal(t, i == plan.TotalPages()-1, p.Closing)
		assert.LessOrEqual(t, p.Used, l.body())
	}
	assert.Equal(t, 100, next)
}

func TestPlanStatement_ClosingFitsAfterLastRow(t *testing.T) {
	plan := PlanStatement(30, DefaultLayout())

	require.Equal(t, 2, plan.TotalPages())
	last := plan.Pages[1]
	assert.Equal(t, 2, last.Rows())
	assert.True(t, last.ColumnHeader)
	assert.True(t, last.Closing)
}

func TestPlanStatement_FullFirstPagePushesClosing(t *testing.T) {
	plan := PlanStatement(28, DefaultLayout())

	require.Equal(t, 2, plan.TotalPages())
	assert.Equal(t, 28, plan.Pages[0].Rows())
	assert.False(t, plan.Pages[0].Closing)
	assert.True(t, plan.Pages[1].Closing)
	assert.False(t, plan.Pages[1].ColumnHeader)
}

func TestPageLabels(t *testing.T) {
	assert.Equal(t, "Page 2 of 5", pageLabel(2, 5))
	assert.Equal(t, "Confidential - SpheneGem Inventory System", confidentialLabel("SpheneGem Inventory System"))
}
