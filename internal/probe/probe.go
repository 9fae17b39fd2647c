// Package probe checks a regressor for look-ahead leakage: it perturbs one
// future row of the features and verifies that no prediction strictly before
// that row changes. A causal model is unaffected by noise it has not seen
// yet; a leaky one shifts earlier records.
package probe

import (
	"context"
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hichamjanati/ramp-workflow/internal/harness"
)

// #region config
// Check is one probe: predict on the first Size rows, perturb row Index,
// predict again.
type Check struct {
	Size  int
	Index int
}

// Config lists the checks to run.
type Config struct {
	Checks []Check
}

// DefaultConfig probes one window: 20 rows with the perturbation at row 10.
func DefaultConfig() Config {
	return Config{Checks: []Check{{Size: 20, Index: 10}}}
}

// #endregion config

// #region result
// Result is the outcome of one check. Detection is informational: it marks a
// broken submission, not a harness fault.
type Result struct {
	Check Check
	// FirstModified is the earliest row whose record changed after the
	// perturbation. Equals Check.Index when nothing before it moved.
	FirstModified int
	Detected      bool
	// Lead is how many rows into the past the perturbation reached
	// (Check.Index - FirstModified); zero when not detected.
	Lead   int
	Reason string
}

// #endregion result

// Frame is the feature frame type the probe consumes.
type Frame = harness.Frame

// #region run
// Run executes every configured check against the harness prediction path.
// The supplied source drives the perturbation noise, keeping the probe
// reproducible.
func Run(ctx context.Context, h *harness.Harness, f Frame, config Config, src rand.Source) ([]Result, error) {
	results := make([]Result, 0, len(config.Checks))
	noise := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	for _, check := range config.Checks {
		rows, _ := f.Data.Dims()
		if check.Size > rows || check.Index >= check.Size {
			return nil, fmt.Errorf("probe check (size %d, index %d) does not fit %d rows",
				check.Size, check.Index, rows)
		}

		window := f.Head(check.Size).Clone()
		baseline, err := h.Predict(ctx, window)
		if err != nil {
			return nil, fmt.Errorf("probe baseline predict: %w", err)
		}

		perturbed := window.Clone()
		shiftRow(perturbed.Data, check.Index, noise.Rand())
		after, err := h.Predict(ctx, perturbed)
		if err != nil {
			return nil, fmt.Errorf("probe perturbed predict: %w", err)
		}

		first := firstChangedRow(baseline, after)
		if first < 0 {
			// No change anywhere: treat as clean, same as a change at the
			// perturbed row itself.
			first = check.Index
		}

		r := Result{Check: check, FirstModified: first}
		if first < check.Index {
			r.Detected = true
			r.Lead = check.Index - first
			r.Reason = fmt.Sprintf("regressor looks into the future by at least %d time steps", r.Lead)
		} else {
			r.Reason = "no prediction before the perturbed row changed"
		}
		results = append(results, r)
	}
	return results, nil
}

// #endregion run

// #region helpers
// shiftRow adds a single scalar offset to every feature in one row.
func shiftRow(m *mat.Dense, row int, offset float64) {
	_, cols := m.Dims()
	for c := 0; c < cols; c++ {
		m.Set(row, c, m.At(row, c)+offset)
	}
}

// firstChangedRow returns the earliest row where the two record matrices
// differ, or -1 when identical.
func firstChangedRow(a, b *mat.Dense) int {
	rows, cols := a.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if a.At(r, c) != b.At(r, c) {
				return r
			}
		}
	}
	return -1
}

// #endregion helpers
