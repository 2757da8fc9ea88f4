package export

import (
	"fmt"

	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// reportSheet is the worksheet name used in the exported workbook.
const reportSheet = "Layout"

// ExportXLSX writes a solve report workbook: a summary block followed by
// one row per placement with scaled dimensions and positions.
func ExportXLSX(path string, result model.SolveResult) error {
	layout := result.Layout

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	// Summary block
	summary := [][]interface{}{
		{"Scale", result.Scale},
		{"Sheet width (mm)", layout.Sheet.Width},
		{"Sheet height (mm)", layout.Sheet.Height},
		{"Panels", layout.PanelCount()},
		{"Rows", len(layout.Rows)},
		{"Used area (mm²)", layout.UsedArea()},
		{"Efficiency (%)", layout.Efficiency()},
	}
	for i, pair := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(reportSheet, cell, &pair); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	// Placement table
	headerRow := len(summary) + 2
	header := []interface{}{"Row", "Label", "Base W", "Base H", "Scaled W", "Scaled H", "X", "Y"}
	cell, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetSheetRow(reportSheet, cell, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rowNum := headerRow + 1
	for rowIdx, row := range layout.Rows {
		for _, p := range row.Placements {
			record := []interface{}{
				rowIdx + 1,
				p.Panel.Label,
				p.Panel.Width,
				p.Panel.Height,
				p.Width,
				p.Height,
				p.X,
				p.Y,
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := f.SetSheetRow(reportSheet, cell, &record); err != nil {
				return fmt.Errorf("failed to write placement row: %w", err)
			}
			rowNum++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
