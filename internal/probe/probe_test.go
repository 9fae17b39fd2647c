package probe

import (
	"context"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/harness"
	"github.com/hichamjanati/ramp-workflow/internal/mixture"
	"github.com/hichamjanati/ramp-workflow/internal/regressor"
)

// #region mocks
// causalRegressor predicts row r from row r's features only.
type causalRegressor struct{}

func (causalRegressor) Fit(_ context.Context, _, _ *mat.Dense, _ []bool) error {
	return nil
}

func (causalRegressor) Predict(_ context.Context, features *mat.Dense, _ []bool) (mixture.Prediction, error) {
	rows, _ := features.Dims()
	return singleGaussian(rows, func(r int) float64 { return features.At(r, 0) }), nil
}

// leakyRegressor folds every row, future included, into every prediction.
type leakyRegressor struct{}

func (leakyRegressor) Fit(_ context.Context, _, _ *mat.Dense, _ []bool) error {
	return nil
}

func (leakyRegressor) Predict(_ context.Context, features *mat.Dense, _ []bool) (mixture.Prediction, error) {
	rows, _ := features.Dims()
	var total float64
	for r := 0; r < rows; r++ {
		total += features.At(r, 0)
	}
	return singleGaussian(rows, func(r int) float64 { return features.At(r, 0) + total }), nil
}

// constantRegressor ignores features entirely.
type constantRegressor struct{}

func (constantRegressor) Fit(_ context.Context, _, _ *mat.Dense, _ []bool) error {
	return nil
}

func (constantRegressor) Predict(_ context.Context, features *mat.Dense, _ []bool) (mixture.Prediction, error) {
	rows, _ := features.Dims()
	return singleGaussian(rows, func(r int) float64 { return 42 }), nil
}

func singleGaussian(rows int, mean func(r int) float64) mixture.Prediction {
	weights := mat.NewDense(rows, 1, nil)
	types := mat.NewDense(rows, 1, nil)
	params := mat.NewDense(rows, 2, nil)
	for r := 0; r < rows; r++ {
		weights.Set(r, 0, 1)
		params.Set(r, 0, mean(r))
		params.Set(r, 1, 1)
	}
	return mixture.Prediction{Weights: weights, Types: types, Params: params}
}

// #endregion mocks

func probeFrame(rows int) Frame {
	data := mat.NewDense(rows, 2, nil)
	for r := 0; r < rows; r++ {
		data.Set(r, 0, float64(r))
		data.Set(r, 1, float64(r)*0.5)
	}
	return Frame{Data: data, Columns: []string{"x", "y_a"}}
}

func newHarness(reg regressor.Regressor) *harness.Harness {
	return harness.New(harness.Config{TargetNames: []string{"a"}}, reg)
}

func TestRunPassesCausalRegressor(t *testing.T) {
	h := newHarness(causalRegressor{})
	results, err := Run(context.Background(), h, probeFrame(30), DefaultConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Detected {
		t.Fatalf("causal regressor flagged: %+v", r)
	}
	if r.FirstModified != r.Check.Index {
		t.Fatalf("first modified row should be the perturbed one, got %d", r.FirstModified)
	}
}

func TestRunDetectsLeakyRegressor(t *testing.T) {
	h := newHarness(leakyRegressor{})
	results, err := Run(context.Background(), h, probeFrame(30), DefaultConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := results[0]
	if !r.Detected {
		t.Fatalf("leaky regressor not flagged: %+v", r)
	}
	if r.FirstModified != 0 {
		t.Fatalf("leak reaches row 0, got first modified %d", r.FirstModified)
	}
	if r.Lead != r.Check.Index {
		t.Fatalf("lead should be the full window, got %d", r.Lead)
	}
	if r.Reason == "" {
		t.Fatal("detection must carry a reason")
	}
}

func TestRunCleanWhenNothingChanges(t *testing.T) {
	h := newHarness(constantRegressor{})
	results, err := Run(context.Background(), h, probeFrame(30), DefaultConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := results[0]
	if r.Detected {
		t.Fatalf("constant regressor flagged: %+v", r)
	}
}

func TestRunRejectsOversizedCheck(t *testing.T) {
	h := newHarness(causalRegressor{})
	config := Config{Checks: []Check{{Size: 100, Index: 10}}}
	if _, err := Run(context.Background(), h, probeFrame(30), config, rand.NewSource(1)); err == nil {
		t.Fatal("expected error for check larger than the frame")
	}
}

func TestRunDoesNotMutateCallerFrame(t *testing.T) {
	h := newHarness(causalRegressor{})
	f := probeFrame(30)
	before := f.Data.At(10, 0)
	if _, err := Run(context.Background(), h, f, DefaultConfig(), rand.NewSource(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Data.At(10, 0) != before {
		t.Fatal("probe perturbation leaked into the caller's frame")
	}
}

func TestRunMultipleChecks(t *testing.T) {
	h := newHarness(leakyRegressor{})
	config := Config{Checks: []Check{{Size: 10, Index: 5}, {Size: 20, Index: 3}}}
	results, err := Run(context.Background(), h, probeFrame(30), config, rand.NewSource(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if !r.Detected {
			t.Fatalf("check %d missed the leak: %+v", i, r)
		}
	}
}
