package export

import (
	"fmt"

	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// ExportDXF writes the solved layout as a DXF drawing: the sheet outline
// on one layer and each placed panel rectangle on another. Coordinates
// use the CAD convention with Y increasing upward, so the layout's
// top-down rows are flipped against the sheet height.
func ExportDXF(path string, result model.SolveResult) error {
	layout := result.Layout
	if layout.Sheet.Width <= 0 || layout.Sheet.Height <= 0 {
		return fmt.Errorf("layout has no sheet dimensions")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("SHEET", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add sheet layer: %w", err)
	}
	drawRect(d, 0, 0, layout.Sheet.Width, layout.Sheet.Height)

	if _, err := d.AddLayer("PANELS", color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add panel layer: %w", err)
	}
	for _, row := range layout.Rows {
		for _, p := range row.Placements {
			// Flip Y: placement origin is top-left, DXF origin bottom-left.
			y := layout.Sheet.Height - p.Y - p.Height
			drawRect(d, p.X, y, p.Width, p.Height)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// drawRect draws an axis-aligned rectangle as four LINE entities on the
// current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
