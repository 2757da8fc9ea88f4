// Package engine implements the greedy row-packing feasibility test and
// the bisection driver that maximizes the uniform panel scale.
package engine

import "github.com/piwi3910/ScaleFit/internal/model"

// Fits reports whether every panel, scaled uniformly by k, can be packed
// into the sheet by the greedy row rule: panels are taken in input order,
// and a panel joins the open row only when its base height exactly equals
// the row's base height and the row's summed scaled width stays within the
// sheet width.
//
// Row grouping compares the unscaled base heights while widths accumulate
// scaled. The open row records its base height and contributes k times
// that height to the running total only when it closes. A panel whose
// scaled width alone exceeds the sheet width makes the arrangement
// infeasible; a scaled width exactly equal to the sheet width is allowed,
// as is a total height exactly equal to the sheet height.
//
// Fits is pure: it never mutates its inputs and keeps no state between
// calls. An empty panel sequence opens no rows and is trivially feasible.
func Fits(k float64, panels []model.Panel, sheet model.Sheet) bool {
	var (
		rowOpen      bool
		currentWidth float64
		rowHeight    float64 // unscaled base height of the open row
		totalHeight  float64
	)

	for _, p := range panels {
		w := k * p.Width
		if w > sheet.Width {
			return false
		}

		switch {
		case !rowOpen:
			rowOpen = true
			currentWidth = w
			rowHeight = p.Height
		case rowHeight == p.Height && currentWidth+w <= sheet.Width:
			currentWidth += w
		default:
			totalHeight += k * rowHeight
			if totalHeight > sheet.Height {
				return false
			}
			currentWidth = w
			rowHeight = p.Height
		}
	}

	if rowOpen {
		totalHeight += k * rowHeight
	}
	return totalHeight <= sheet.Height
}
