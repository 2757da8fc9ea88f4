package model

// AppConfig holds application-wide preferences and default solver settings.
type AppConfig struct {
	// Default solver settings applied to new projects
	DefaultLowerBound float64 `json:"default_lower_bound"`
	DefaultUpperBound float64 `json:"default_upper_bound"`
	DefaultIterations int     `json:"default_iterations"`
	DefaultPrecision  int     `json:"default_precision"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
	HistoryLimit   int      `json:"history_limit"` // max solve history entries, 0 = unlimited
}

// DefaultAppConfig returns an AppConfig populated with defaults matching
// the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultLowerBound: defaults.LowerBound,
		DefaultUpperBound: defaults.UpperBound,
		DefaultIterations: defaults.Iterations,
		DefaultPrecision:  defaults.Precision,
		RecentProjects:    []string{},
		HistoryLimit:      100,
	}
}

// ApplyToSettings copies the default values from AppConfig into a
// SolveSettings struct. This is used when creating a new project so it
// inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *SolveSettings) {
	s.LowerBound = c.DefaultLowerBound
	s.UpperBound = c.DefaultUpperBound
	s.Iterations = c.DefaultIterations
	s.Precision = c.DefaultPrecision
}
