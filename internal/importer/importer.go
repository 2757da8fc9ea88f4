// Package importer reads panel sequences from the compact token-stream
// format, CSV files, and Excel workbooks. CSV import supports automatic
// delimiter detection and case-insensitive header recognition.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a file import operation.
type ImportResult struct {
	Panels   []model.Panel
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label  int
	Width  int
	Height int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":  {"label", "name", "panel", "panel name", "description", "desc", "piece", "item"},
	"width":  {"width", "w", "a", "x"},
	"height": {"height", "h", "b", "y"},
}

// ReadTokenStream parses the whitespace-separated stream format:
// a count n, the sheet width and height, then n width/height pairs.
// Tokens may be split across lines arbitrarily. Any missing, non-numeric,
// or non-positive token is a fatal parse error; the sequence order is
// preserved exactly as read.
func ReadTokenStream(r io.Reader) ([]model.Panel, model.Sheet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("missing %s", what)
	}

	nextFloat := func(what string) (float64, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", what, tok)
		}
		if v <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %q", what, tok)
		}
		return v, nil
	}

	countTok, err := next("panel count")
	if err != nil {
		return nil, model.Sheet{}, err
	}
	n, err := strconv.Atoi(countTok)
	if err != nil || n <= 0 {
		return nil, model.Sheet{}, fmt.Errorf("invalid panel count %q", countTok)
	}

	var sheet model.Sheet
	if sheet.Width, err = nextFloat("sheet width"); err != nil {
		return nil, model.Sheet{}, err
	}
	if sheet.Height, err = nextFloat("sheet height"); err != nil {
		return nil, model.Sheet{}, err
	}

	panels := make([]model.Panel, 0, n)
	for i := 0; i < n; i++ {
		w, err := nextFloat(fmt.Sprintf("panel %d width", i+1))
		if err != nil {
			return nil, model.Sheet{}, err
		}
		h, err := nextFloat(fmt.Sprintf("panel %d height", i+1))
		if err != nil {
			return nil, model.Sheet{}, err
		}
		panels = append(panels, model.NewPanel(fmt.Sprintf("Panel %d", i+1), w, h))
	}

	return panels, sheet, nil
}

// ReadTokenStreamFile opens path and parses it as a token stream.
func ReadTokenStreamFile(path string) ([]model.Panel, model.Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.Sheet{}, err
	}
	defer f.Close()
	return ReadTokenStream(f)
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe. The delimiter
// that produces the most consistent column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each
// column role. Returns the mapping and true if a header was detected, or
// a default positional mapping (label, width, height) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "label":
						if mapping.Label == -1 {
							mapping.Label = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value, returning "" for out-of-range indices.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow converts a single data row into a Panel.
// Returns the panel and an error message (empty on success).
func parseRow(row []string, mapping ColumnMapping, rowLabel string, panelNum int) (model.Panel, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Panel %d", panelNum+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return model.Panel{}, fmt.Sprintf("%s: Missing width value", rowLabel)
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return model.Panel{}, fmt.Sprintf("%s: Missing height value", rowLabel)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return model.Panel{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr)
	}

	if width <= 0 || height <= 0 {
		return model.Panel{}, fmt.Sprintf("%s: Width and height must be positive", rowLabel)
	}

	return model.NewPanel(label, width, height), ""
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports a panel sequence from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters. Row order in the
// file becomes the packing order.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports a panel sequence from a CSV reader with a
// specific delimiter. This is useful for testing or when the delimiter is
// already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports a panel sequence from the first sheet of an Excel
// workbook (.xlsx).
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into panels.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// No recognized header: if the width column of the first row is not
		// numeric, treat it as an unrecognized header and skip it.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		panel, errMsg := parseRow(row, mapping, rowLabel, len(result.Panels))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		result.Panels = append(result.Panels, panel)
	}

	return result
}
