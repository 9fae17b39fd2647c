// Package harness drives a generative regressor through the evaluation
// pipeline: train on features and targets, predict conditional mixture
// records, and step (sample) joint target vectors.
package harness

import (
	"context"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/codec"
	"github.com/hichamjanati/ramp-workflow/internal/mixture"
	"github.com/hichamjanati/ramp-workflow/internal/regressor"
	"github.com/hichamjanati/ramp-workflow/internal/reweight"
	"github.com/hichamjanati/ramp-workflow/internal/sample"
)

// #region config
// Config identifies the target columns and the optional restart signal.
// TargetNames order is the conditioning order for the prediction path; the
// harness never infers an ordering on its own.
type Config struct {
	// TargetNames are the target column base names; the realized values live
	// in frame columns named "y_"+name.
	TargetNames []string
	// RestartName is the optional per-row signal column, empty when unused.
	RestartName string
	// MaxComponents caps the per-dimension mixture size a regressor may
	// return. 0 disables the cap.
	MaxComponents int
}

// #endregion config

// #region harness
// Harness binds a config to a regressor.
type Harness struct {
	config Config
	reg    regressor.Regressor
}

// New creates a harness around the given regressor.
func New(config Config, reg regressor.Regressor) *Harness {
	return &Harness{config: config, reg: reg}
}

// NTargets returns the number of target dimensions.
func (h *Harness) NTargets() int {
	return len(h.config.TargetNames)
}

// #endregion harness

// #region train
// Train fits the regressor. targets must be (rows, nTargets); a trainIdx
// subset, when non-nil, restricts fitting to those rows of both matrices and
// the restart flags.
func (h *Harness) Train(ctx context.Context, f Frame, targets *mat.Dense, trainIdx []int) error {
	features, restart := f.SplitRestart(h.config.RestartName)

	fr, _ := features.Data.Dims()
	tr, tc := targets.Dims()
	if tr != fr {
		return mixture.Shapef("harness.Train", "features have %d rows, targets have %d", fr, tr)
	}
	if tc != h.NTargets() {
		return mixture.Shapef("harness.Train", "targets have %d columns, config names %d", tc, h.NTargets())
	}

	x := features.Data
	y := targets
	if trainIdx != nil {
		x = subsetRows(x, trainIdx)
		y = subsetRows(y, trainIdx)
		if restart != nil {
			sub := make([]bool, len(trainIdx))
			for i, idx := range trainIdx {
				sub[i] = restart[idx]
			}
			restart = sub
		}
	}

	return h.reg.Fit(ctx, x, y, restart)
}

// #endregion train

// #region predict
// Predict runs the prediction path: strip the restart signal and the
// realized truth columns, ask the regressor for the mixture, reconstruct
// conditional weights from the realized values, and encode the result into
// the flat record matrix.
func (h *Harness) Predict(ctx context.Context, f Frame) (*mat.Dense, error) {
	features, restart := f.SplitRestart(h.config.RestartName)
	features, y, err := features.SplitTruth(h.config.TargetNames)
	if err != nil {
		return nil, err
	}

	pred, err := h.reg.Predict(ctx, features.Data, restart)
	if err != nil {
		return nil, err
	}
	if _, err := pred.CheckContract(h.NTargets(), h.config.MaxComponents); err != nil {
		return nil, err
	}

	conditional, err := reweight.Conditional(pred, y, h.NTargets())
	if err != nil {
		return nil, err
	}

	return codec.Encode(mixture.Prediction{
		Weights: conditional,
		Types:   pred.Types,
		Params:  pred.Params,
	}, h.NTargets())
}

// #endregion predict

// #region step
// Step runs the sampling path: predict on the frame (no truth columns) and
// draw one joint target vector from the first row's mixture using the raw
// marginal weights. The caller owns the random source.
func (h *Harness) Step(ctx context.Context, f Frame, src rand.Source) (sample.Result, error) {
	features, restart := f.SplitRestart(h.config.RestartName)

	pred, err := h.reg.Predict(ctx, features.Data, restart)
	if err != nil {
		return sample.Result{}, err
	}
	// The weight-sum contract is deliberately not enforced here: the sampler
	// renormalizes sloppy weights and flags the draw instead. Type codes are
	// checked inside Draw via the family registry.
	shape, err := pred.Validate(h.NTargets())
	if err != nil {
		return sample.Result{}, err
	}
	if err := shape.CheckCap(h.config.MaxComponents); err != nil {
		return sample.Result{}, err
	}

	return sample.Draw(pred, h.NTargets(), src)
}

// #endregion step

// #region helpers
func subsetRows(m *mat.Dense, idx []int) *mat.Dense {
	_, cols := m.Dims()
	out := mat.NewDense(len(idx), cols, nil)
	for i, r := range idx {
		for c := 0; c < cols; c++ {
			out.Set(i, c, m.At(r, c))
		}
	}
	return out
}

// #endregion helpers
