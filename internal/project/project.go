// Package project handles JSON persistence: saved projects, the
// application config, and the solve history.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/ScaleFit/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.scalefit/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".scalefit")
}

// SaveProject writes the project to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveProject(path string, proj model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the specified JSON file.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, err
	}
	var proj model.Project
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if proj.Panels == nil {
		proj.Panels = []model.Panel{}
	}
	return proj, nil
}
