package model

import "github.com/google/uuid"

// Panel represents one rectangle in the enlargement sequence.
// Width and Height are the unscaled base dimensions in mm. The order of
// panels in a sequence is significant: rows are formed from consecutive
// panels only, so a Panel's position must never be changed after input.
type Panel struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Width  float64 `json:"width"`  // mm, unscaled
	Height float64 `json:"height"` // mm, unscaled
}

func NewPanel(label string, w, h float64) Panel {
	return Panel{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
	}
}

// Sheet represents the bounding box the scaled panels must fit into.
type Sheet struct {
	Width  float64 `json:"width"`  // mm
	Height float64 `json:"height"` // mm
}

// SolveSettings holds the bisection parameters.
type SolveSettings struct {
	LowerBound float64 `json:"lower_bound"` // Known-feasible starting scale
	UpperBound float64 `json:"upper_bound"` // Known-infeasible starting scale
	Iterations int     `json:"iterations"`  // Fixed bisection step count
	Precision  int     `json:"precision"`   // Decimal digits in formatted output
}

// DefaultSettings returns the standard solver configuration: a fixed
// 100-step bisection of [0, 1e9+1] reported to 10 decimal places.
func DefaultSettings() SolveSettings {
	return SolveSettings{
		LowerBound: 0.0,
		UpperBound: 1_000_000_001.0,
		Iterations: 100,
		Precision:  10,
	}
}

// Placement is a single panel positioned on the sheet at the solved scale.
// Width and Height are the scaled dimensions; X and Y are measured from the
// sheet's top-left corner.
type Placement struct {
	Panel  Panel   `json:"panel"`
	X      float64 `json:"x"` // mm from left edge
	Y      float64 `json:"y"` // mm from top edge
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Row is one horizontal band of the layout: a run of consecutive panels
// sharing the same base height, placed side by side.
type Row struct {
	Y          float64     `json:"y"`      // mm from top edge
	Height     float64     `json:"height"` // scaled row height
	Placements []Placement `json:"placements"`
}

// Width returns the summed scaled width of the row's placements.
func (r Row) Width() float64 {
	var total float64
	for _, p := range r.Placements {
		total += p.Width
	}
	return total
}

// Layout is the full row-packed arrangement of a panel sequence on a sheet
// at a given scale.
type Layout struct {
	Scale float64 `json:"scale"`
	Sheet Sheet   `json:"sheet"`
	Rows  []Row   `json:"rows"`
}

// PanelCount returns the number of placed panels across all rows.
func (l Layout) PanelCount() int {
	var n int
	for _, r := range l.Rows {
		n += len(r.Placements)
	}
	return n
}

// UsedArea returns the total area covered by scaled panels.
func (l Layout) UsedArea() float64 {
	var total float64
	for _, r := range l.Rows {
		for _, p := range r.Placements {
			total += p.Width * p.Height
		}
	}
	return total
}

// TotalHeight returns the summed height of all rows.
func (l Layout) TotalHeight() float64 {
	var total float64
	for _, r := range l.Rows {
		total += r.Height
	}
	return total
}

// Efficiency returns the sheet usage percentage at this scale.
func (l Layout) Efficiency() float64 {
	area := l.Sheet.Width * l.Sheet.Height
	if area == 0 {
		return 0
	}
	return (l.UsedArea() / area) * 100.0
}

// SolveResult holds the outcome of a scale maximization run.
// Feasible records whether the solved scale itself passes the fit test;
// it is true for any well-formed input since the lower bound is feasible.
type SolveResult struct {
	Scale    float64 `json:"scale"`
	Feasible bool    `json:"feasible"`
	Layout   Layout  `json:"layout"`
}

// Project ties everything together for save/load.
type Project struct {
	Name     string        `json:"name"`
	Panels   []Panel       `json:"panels"`
	Sheet    Sheet         `json:"sheet"`
	Settings SolveSettings `json:"settings"`
	Result   *SolveResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Panels:   []Panel{},
		Settings: DefaultSettings(),
	}
}
