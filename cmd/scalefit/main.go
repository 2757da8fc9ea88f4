// ScaleFit — uniform scale maximizer for row-packed panel layouts.
//
// Reads a panel sequence and sheet dimensions, finds the largest uniform
// scale at which the panels still fit when packed into rows in their
// given order, and prints the scale with 10 decimal digits. The solved
// layout can additionally be exported to PDF, DXF, or Excel.
//
// Build:
//   go build -o scalefit ./cmd/scalefit
//
// Usage:
//   scalefit < input.txt
//   scalefit -in panels.csv -sheet-width 2440 -sheet-height 1220 -pdf layout.pdf
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/ScaleFit/internal/engine"
	"github.com/piwi3910/ScaleFit/internal/export"
	"github.com/piwi3910/ScaleFit/internal/importer"
	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/piwi3910/ScaleFit/internal/project"
)

type options struct {
	inPath      string
	sheetWidth  float64
	sheetHeight float64
	pdfPath     string
	labelsPath  string
	dxfPath     string
	xlsxPath    string
	savePath    string
	history     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.inPath, "in", "", "input file; token stream by default, .csv/.xlsx panel lists by extension (default stdin)")
	flag.Float64Var(&opts.sheetWidth, "sheet-width", 0, "sheet width in mm (required for .csv/.xlsx input)")
	flag.Float64Var(&opts.sheetHeight, "sheet-height", 0, "sheet height in mm (required for .csv/.xlsx input)")
	flag.StringVar(&opts.pdfPath, "pdf", "", "write a layout diagram PDF to this path")
	flag.StringVar(&opts.labelsPath, "labels", "", "write QR-coded panel labels PDF to this path")
	flag.StringVar(&opts.dxfPath, "dxf", "", "write the layout as a DXF drawing to this path")
	flag.StringVar(&opts.xlsxPath, "xlsx", "", "write a solve report workbook to this path")
	flag.StringVar(&opts.savePath, "save", "", "save the project (panels, sheet, result) as JSON to this path")
	flag.BoolVar(&opts.history, "history", false, "append this solve to ~/.scalefit/history.json")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "scalefit: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	panels, sheet, err := readInput(opts)
	if err != nil {
		return err
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "scalefit: ignoring unreadable config: %v\n", err)
		config = model.DefaultAppConfig()
	}
	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)

	result := engine.Solve(panels, sheet, settings)
	fmt.Println(engine.FormatScale(result.Scale, settings))

	if opts.pdfPath != "" {
		if err := export.ExportPDF(opts.pdfPath, result); err != nil {
			return fmt.Errorf("pdf export: %w", err)
		}
	}
	if opts.labelsPath != "" {
		if err := export.ExportLabels(opts.labelsPath, result); err != nil {
			return fmt.Errorf("labels export: %w", err)
		}
	}
	if opts.dxfPath != "" {
		if err := export.ExportDXF(opts.dxfPath, result); err != nil {
			return fmt.Errorf("dxf export: %w", err)
		}
	}
	if opts.xlsxPath != "" {
		if err := export.ExportXLSX(opts.xlsxPath, result); err != nil {
			return fmt.Errorf("xlsx export: %w", err)
		}
	}

	if opts.savePath != "" {
		proj := model.Project{
			Name:     strings.TrimSuffix(filepath.Base(opts.savePath), filepath.Ext(opts.savePath)),
			Panels:   panels,
			Sheet:    sheet,
			Settings: settings,
			Result:   &result,
		}
		if err := project.SaveProject(opts.savePath, proj); err != nil {
			return fmt.Errorf("save project: %w", err)
		}
		project.RememberProject(&config, opts.savePath)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), config); err != nil {
			fmt.Fprintf(os.Stderr, "scalefit: could not update config: %v\n", err)
		}
	}

	if opts.history {
		if err := project.AppendHistory(project.DefaultHistoryPath(), result, config.HistoryLimit); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
	}

	return nil
}

// readInput loads the panel sequence and sheet from the configured source.
// CSV and Excel inputs carry only panels, so the sheet dimensions must be
// supplied via flags.
func readInput(opts options) ([]model.Panel, model.Sheet, error) {
	switch strings.ToLower(filepath.Ext(opts.inPath)) {
	case ".csv", ".xlsx":
		if opts.sheetWidth <= 0 || opts.sheetHeight <= 0 {
			return nil, model.Sheet{}, fmt.Errorf("%s input requires -sheet-width and -sheet-height", filepath.Ext(opts.inPath))
		}

		var result importer.ImportResult
		if strings.EqualFold(filepath.Ext(opts.inPath), ".csv") {
			result = importer.ImportCSV(opts.inPath)
		} else {
			result = importer.ImportExcel(opts.inPath)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "scalefit: %s\n", w)
		}
		if len(result.Errors) > 0 {
			return nil, model.Sheet{}, fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
		}
		if len(result.Panels) == 0 {
			return nil, model.Sheet{}, fmt.Errorf("no panels in %s", opts.inPath)
		}
		return result.Panels, model.Sheet{Width: opts.sheetWidth, Height: opts.sheetHeight}, nil

	default:
		if opts.inPath != "" {
			return importer.ReadTokenStreamFile(opts.inPath)
		}
		return importer.ReadTokenStream(os.Stdin)
	}
}
