package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPanel(t *testing.T) {
	p := NewPanel("Door", 600, 2000)

	assert.Equal(t, "Door", p.Label)
	assert.Equal(t, 600.0, p.Width)
	assert.Equal(t, 2000.0, p.Height)
	assert.Len(t, p.ID, 8)

	// IDs must be unique across panels
	q := NewPanel("Door", 600, 2000)
	assert.NotEqual(t, p.ID, q.ID)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, 0.0, s.LowerBound)
	assert.Equal(t, 1_000_000_001.0, s.UpperBound)
	assert.Equal(t, 100, s.Iterations)
	assert.Equal(t, 10, s.Precision)
}

func TestLayoutStats(t *testing.T) {
	layout := Layout{
		Scale: 2,
		Sheet: Sheet{Width: 10, Height: 10},
		Rows: []Row{
			{
				Y: 0, Height: 4,
				Placements: []Placement{
					{Width: 4, Height: 4},
					{Width: 2, Height: 4},
				},
			},
			{
				Y: 4, Height: 2,
				Placements: []Placement{
					{Width: 5, Height: 2},
				},
			},
		},
	}

	assert.Equal(t, 3, layout.PanelCount())
	assert.Equal(t, 6.0, layout.TotalHeight())
	assert.Equal(t, 6.0, layout.Rows[0].Width())
	assert.InDelta(t, 4*4+2*4+5*2, layout.UsedArea(), 1e-12)
	assert.InDelta(t, 34.0, layout.Efficiency(), 1e-12)
}

func TestLayoutEfficiency_ZeroSheet(t *testing.T) {
	assert.Equal(t, 0.0, Layout{}.Efficiency())
}

func TestNewProject(t *testing.T) {
	proj := NewProject()

	assert.Equal(t, "Untitled", proj.Name)
	require.NotNil(t, proj.Panels)
	assert.Empty(t, proj.Panels)
	assert.Equal(t, DefaultSettings(), proj.Settings)
	assert.Nil(t, proj.Result)
}
