package engine

import (
	"fmt"

	"github.com/piwi3910/ScaleFit/internal/model"
)

// MaxScale approximates the supremum of all scales k for which
// Fits(k, panels, sheet) holds, bisecting the interval
// [settings.LowerBound, settings.UpperBound] a fixed number of times.
//
// Feasibility is monotonic in k (a larger scale only makes fitting
// harder), so the interval invariant holds throughout: the lower bound is
// always feasible, the upper bound infeasible. The iteration count is
// fixed rather than convergence-based: the default 100 steps shrink the
// interval by 2^100, beyond double precision, while keeping the runtime
// deterministic on every platform. An epsilon stop could spin forever on
// adjacent representable values.
func MaxScale(panels []model.Panel, sheet model.Sheet, settings model.SolveSettings) float64 {
	low := settings.LowerBound
	high := settings.UpperBound

	for i := 0; i < settings.Iterations; i++ {
		mid := (low + high) / 2
		if Fits(mid, panels, sheet) {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}

// Solve runs MaxScale and materializes the layout at the solved scale.
func Solve(panels []model.Panel, sheet model.Sheet, settings model.SolveSettings) model.SolveResult {
	k := MaxScale(panels, sheet, settings)
	return model.SolveResult{
		Scale:    k,
		Feasible: Fits(k, panels, sheet),
		Layout:   BuildLayout(k, panels, sheet),
	}
}

// FormatScale renders a solved scale with the configured number of
// decimal digits.
func FormatScale(k float64, settings model.SolveSettings) string {
	return fmt.Sprintf("%.*f", settings.Precision, k)
}
