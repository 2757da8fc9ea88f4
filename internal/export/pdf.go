// Package export writes solved layouts to PDF, DXF, and Excel files,
// including QR-coded panel labels.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/ScaleFit/internal/model"
)

// panelColor represents an RGB color for a placed panel.
type panelColor struct {
	R, G, B int
}

// panelColors is the rotating fill palette for the layout diagram.
var panelColors = []panelColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a single-page PDF with the scaled layout drawn
// inside the sheet outline, preceded by a stats line.
func ExportPDF(path string, result model.SolveResult) error {
	layout := result.Layout
	if layout.Sheet.Width <= 0 || layout.Sheet.Height <= 0 {
		return fmt.Errorf("layout has no sheet dimensions")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Scaled layout: %.0f x %.0f mm sheet, scale %.10f",
		layout.Sheet.Width, layout.Sheet.Height, result.Scale)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Panels: %d | Rows: %d | Used area: %.0f mm² | Efficiency: %.1f%%",
		layout.PanelCount(), len(layout.Rows), layout.UsedArea(), layout.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawLayout(pdf, layout)

	return pdf.OutputFileAndClose(path)
}

// drawLayout renders the sheet outline and every placement, scaled to fit
// the available drawing area while preserving aspect ratio.
func drawLayout(pdf *fpdf.Fpdf, layout model.Layout) {
	availW := pageWidth - marginLeft - marginRight
	availH := pageHeight - drawAreaTop - marginBottom

	scaleX := availW / layout.Sheet.Width
	scaleY := availH / layout.Sheet.Height
	drawScale := scaleX
	if scaleY < drawScale {
		drawScale = scaleY
	}

	originX := marginLeft + (availW-layout.Sheet.Width*drawScale)/2
	originY := drawAreaTop + (availH-layout.Sheet.Height*drawScale)/2

	// Sheet outline
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Rect(originX, originY, layout.Sheet.Width*drawScale, layout.Sheet.Height*drawScale, "D")

	colorIdx := 0
	pdf.SetLineWidth(0.2)
	for _, row := range layout.Rows {
		for _, p := range row.Placements {
			c := panelColors[colorIdx%len(panelColors)]
			colorIdx++

			x := originX + p.X*drawScale
			y := originY + p.Y*drawScale
			w := p.Width * drawScale
			h := p.Height * drawScale

			pdf.SetFillColor(c.R, c.G, c.B)
			pdf.SetDrawColor(60, 60, 60)
			pdf.Rect(x, y, w, h, "FD")

			// Label the panel when there is room for text
			if w > 12 && h > 6 {
				pdf.SetFont("Helvetica", "", 7)
				pdf.SetTextColor(0, 0, 0)
				pdf.SetXY(x, y+h/2-2)
				caption := fmt.Sprintf("%s (%.1f x %.1f)", p.Panel.Label, p.Width, p.Height)
				pdf.CellFormat(w, 4, caption, "", 0, "C", false, 0, "")
			}
		}
	}
	pdf.SetTextColor(0, 0, 0)
}
