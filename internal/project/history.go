package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/ScaleFit/internal/model"
)

// HistoryEntry records one completed solve.
type HistoryEntry struct {
	SolvedAt   string      `json:"solved_at"` // RFC3339 UTC
	PanelCount int         `json:"panel_count"`
	Sheet      model.Sheet `json:"sheet"`
	Scale      float64     `json:"scale"`
}

// DefaultHistoryPath returns the default path for the solve history file.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.json")
}

// LoadHistory reads the solve history from the given path.
// A missing file yields an empty history with no error.
func LoadHistory(path string) ([]HistoryEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []HistoryEntry{}, nil
		}
		return nil, err
	}
	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return entries, nil
}

// AppendHistory loads the history at path, appends a new entry for the
// given solve, trims it to limit entries (0 = unlimited, newest kept),
// and writes it back.
func AppendHistory(path string, result model.SolveResult, limit int) error {
	entries, err := LoadHistory(path)
	if err != nil {
		return err
	}

	entries = append(entries, HistoryEntry{
		SolvedAt:   time.Now().UTC().Format(time.RFC3339),
		PanelCount: result.Layout.PanelCount(),
		Sheet:      result.Layout.Sheet,
		Scale:      result.Scale,
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
