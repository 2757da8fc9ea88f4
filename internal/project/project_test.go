package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/ScaleFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadProject_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.sfp.json")

	proj := model.NewProject()
	proj.Name = "Kitchen"
	proj.Sheet = model.Sheet{Width: 2440, Height: 1220}
	proj.Panels = []model.Panel{
		model.NewPanel("Door", 600, 2000),
		model.NewPanel("Side", 450, 900),
	}
	proj.Result = &model.SolveResult{Scale: 0.5}

	require.NoError(t, SaveProject(path, proj))

	loaded, err := LoadProject(path)
	require.NoError(t, err)
	assert.Equal(t, proj.Name, loaded.Name)
	assert.Equal(t, proj.Sheet, loaded.Sheet)
	assert.Equal(t, proj.Panels, loaded.Panels)
	require.NotNil(t, loaded.Result)
	assert.Equal(t, 0.5, loaded.Result.Scale)
	assert.Equal(t, proj.Settings, loaded.Settings)
}

func TestLoadProject_MissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadProject_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadProject(path)
	assert.Error(t, err)
}

func TestAppConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config := model.DefaultAppConfig()
	config.DefaultIterations = 50
	config.RecentProjects = []string{"/tmp/a.json"}
	require.NoError(t, SaveAppConfig(path, config))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadAppConfig_PartialFileKeepsDefaults(t *testing.T) {
	// A config file that only sets some keys must not zero the solver
	// defaults: Iterations=0 would turn every solve into the lower bound.
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"recent_projects":["/tmp/a.json"]}`), 0644))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/tmp/a.json"}, loaded.RecentProjects)

	defaults := model.DefaultSettings()
	var s model.SolveSettings
	loaded.ApplyToSettings(&s)
	assert.Equal(t, defaults, s, "unset config keys must fall back to the solver defaults")
}

func TestLoadAppConfig_MissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), loaded)
}

func TestRememberProject(t *testing.T) {
	config := model.DefaultAppConfig()

	RememberProject(&config, "/tmp/a.json")
	RememberProject(&config, "/tmp/b.json")
	RememberProject(&config, "/tmp/a.json")

	assert.Equal(t, []string{"/tmp/a.json", "/tmp/b.json"}, config.RecentProjects)

	for i := 0; i < 20; i++ {
		RememberProject(&config, filepath.Join("/tmp", "p", string(rune('a'+i))))
	}
	assert.Len(t, config.RecentProjects, 10)
}

func TestHistory_AppendAndTrim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	result := model.SolveResult{
		Scale: 1.5,
		Layout: model.Layout{
			Scale: 1.5,
			Sheet: model.Sheet{Width: 10, Height: 10},
		},
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, AppendHistory(path, result, 3))
	}

	entries, err := LoadHistory(path)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "history should be trimmed to the limit")
	assert.Equal(t, 1.5, entries[0].Scale)
	assert.NotEmpty(t, entries[0].SolvedAt)
}

func TestLoadHistory_MissingFile(t *testing.T) {
	entries, err := LoadHistory(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
