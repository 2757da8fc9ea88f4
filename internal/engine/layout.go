package engine

import "github.com/piwi3910/ScaleFit/internal/model"

// BuildLayout places every panel at scale k using the same row-break rule
// as Fits and returns the resulting arrangement with per-panel positions.
// Rows may overflow the sheet when k is infeasible; callers that need a
// fitting layout must pass a scale for which Fits returns true.
func BuildLayout(k float64, panels []model.Panel, sheet model.Sheet) model.Layout {
	layout := model.Layout{Scale: k, Sheet: sheet}

	var (
		row          model.Row
		rowOpen      bool
		baseHeight   float64
		currentWidth float64
		y            float64
	)

	closeRow := func() {
		row.Y = y
		row.Height = k * baseHeight
		y += row.Height
		layout.Rows = append(layout.Rows, row)
	}

	for _, p := range panels {
		w := k * p.Width

		if rowOpen && (baseHeight != p.Height || currentWidth+w > sheet.Width) {
			closeRow()
			rowOpen = false
		}
		if !rowOpen {
			rowOpen = true
			baseHeight = p.Height
			currentWidth = 0
			row = model.Row{}
		}

		row.Placements = append(row.Placements, model.Placement{
			Panel:  p,
			X:      currentWidth,
			Y:      y,
			Width:  w,
			Height: k * p.Height,
		})
		currentWidth += w
	}

	if rowOpen {
		closeRow()
	}
	return layout
}
