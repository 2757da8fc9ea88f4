package engine

import (
	"testing"

	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panelSeq builds a panel sequence from parallel width/height slices.
func panelSeq(widths, heights []float64) []model.Panel {
	panels := make([]model.Panel, len(widths))
	for i := range widths {
		panels[i] = model.NewPanel("", widths[i], heights[i])
	}
	return panels
}

func TestFits_SinglePanelWidthBoundary(t *testing.T) {
	panels := panelSeq([]float64{2}, []float64{1})
	sheet := model.Sheet{Width: 10, Height: 100}

	// A scaled width exactly equal to the sheet width is allowed.
	assert.True(t, Fits(5.0, panels, sheet))
	// Anything beyond is not.
	assert.False(t, Fits(5.0000001, panels, sheet))
}

func TestFits_TotalHeightBoundary(t *testing.T) {
	panels := panelSeq([]float64{1}, []float64{3})
	sheet := model.Sheet{Width: 100, Height: 9}

	// Total height exactly equal to the sheet height is allowed.
	assert.True(t, Fits(3.0, panels, sheet))
	assert.False(t, Fits(3.0000001, panels, sheet))
}

func TestFits_EqualHeightsShareRow(t *testing.T) {
	// Two panels of equal base height combine into one row when the summed
	// scaled width fits.
	panels := panelSeq([]float64{1, 1}, []float64{2, 2})
	sheet := model.Sheet{Width: 4, Height: 2}

	assert.True(t, Fits(1.0, panels, sheet))
	// Slightly larger: row height 2k exceeds the sheet height.
	assert.False(t, Fits(1.001, panels, sheet))
}

func TestFits_EqualHeightsWidthOverflowBreaksRow(t *testing.T) {
	// Equal base heights but the joint width does not fit, so the panels
	// stack into two rows.
	panels := panelSeq([]float64{3, 3}, []float64{1, 1})
	sheet := model.Sheet{Width: 4, Height: 2}

	// k=1: each row is 3 wide, 1 tall; two rows of height 1 fit in H=2.
	assert.True(t, Fits(1.0, panels, sheet))
	// k=1.1: rows are 3.3 wide (still < 4 individually, > 4 jointly),
	// stacked height 2.2 > 2.
	assert.False(t, Fits(1.1, panels, sheet))
}

func TestFits_DifferentHeightsAlwaysBreakRow(t *testing.T) {
	// Different base heights force a row break no matter how much width
	// remains.
	panels := panelSeq([]float64{1, 1}, []float64{1, 2})
	sheet := model.Sheet{Width: 10, Height: 3}

	// Rows stack: k*1 + k*2 = 3k <= 3 holds at k=1.
	assert.True(t, Fits(1.0, panels, sheet))
	assert.False(t, Fits(1.001, panels, sheet))
}

func TestFits_HeightGroupingIsExact(t *testing.T) {
	// Row grouping uses exact equality on the base heights; nearly equal
	// heights are distinct rows.
	nearly := 2 + 1e-9
	panels := panelSeq([]float64{1, 1}, []float64{2, nearly})
	sheet := model.Sheet{Width: 10, Height: 4.1}

	// Two stacked rows of ~2k each: fits at k=1 but not much beyond.
	assert.True(t, Fits(1.0, panels, sheet))
	assert.False(t, Fits(1.05, panels, sheet))

	// With truly equal heights the same panels share one row of height 2k,
	// leaving room to scale further.
	equal := panelSeq([]float64{1, 1}, []float64{2, 2})
	assert.True(t, Fits(1.5, equal, sheet))
}

func TestFits_EmptySequenceIsTriviallyFeasible(t *testing.T) {
	// No panels means no rows, so any scale fits.
	sheet := model.Sheet{Width: 1, Height: 1}
	assert.True(t, Fits(0, nil, sheet))
	assert.True(t, Fits(1e9, nil, sheet))
}

func TestFits_Monotonic(t *testing.T) {
	// Feasibility is downward-closed in k: once a scale is infeasible,
	// every larger scale must be too.
	panels := panelSeq(
		[]float64{2, 1, 1, 3, 2, 2},
		[]float64{1, 2, 2, 1, 3, 3},
	)
	sheet := model.Sheet{Width: 7, Height: 9}

	wasInfeasible := false
	for k := 0.0; k <= 5.0; k += 0.01 {
		feasible := Fits(k, panels, sheet)
		if wasInfeasible {
			require.False(t, feasible, "feasible at k=%v after infeasible at a smaller scale", k)
		}
		if !feasible {
			wasInfeasible = true
		}
	}
	require.True(t, wasInfeasible, "scan should reach infeasible scales")
}

func TestFits_PureAndIdempotent(t *testing.T) {
	panels := panelSeq([]float64{1, 2, 3}, []float64{2, 2, 1})
	sheet := model.Sheet{Width: 5, Height: 5}

	snapshot := make([]model.Panel, len(panels))
	copy(snapshot, panels)

	first := Fits(1.2, panels, sheet)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Fits(1.2, panels, sheet))
	}
	assert.Equal(t, snapshot, panels, "inputs must not be mutated")
}
