package regressor

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region linear
// Linear is the in-process reference regressor: ordinary least squares with
// an intercept, one shared residual sigma per target dimension, emitting a
// single-component Gaussian mixture. It exists so the harness, the probe,
// and the sampler can be exercised without an external service.
type Linear struct {
	coef  *mat.Dense // (features+1) x nTargets, intercept in row 0
	sigma []float64  // one residual std per target
}

// NewLinear returns an unfitted linear reference model.
func NewLinear() *Linear {
	return &Linear{}
}

// minSigma guards the zero-residual perfect fit, which would otherwise emit
// a degenerate component every downstream stage rejects.
const minSigma = 1e-9

// #endregion linear

// #region fit
// Fit solves the least-squares problem for all targets at once and estimates
// per-target residual sigmas. restart is accepted for contract compatibility
// and ignored; the linear model has no episode structure.
func (l *Linear) Fit(ctx context.Context, features, targets *mat.Dense, restart []bool) error {
	_ = ctx
	rows, cols := features.Dims()
	tr, nTargets := targets.Dims()
	if tr != rows {
		return mixture.Shapef("regressor.Linear.Fit", "features have %d rows, targets have %d", rows, tr)
	}
	if rows <= cols+1 {
		return fmt.Errorf("linear fit: %d rows cannot determine %d coefficients", rows, cols+1)
	}

	aug := augment(features)
	coef := mat.NewDense(cols+1, nTargets, nil)
	if err := coef.Solve(aug, targets); err != nil {
		return fmt.Errorf("least squares solve: %w", err)
	}

	var fitted mat.Dense
	fitted.Mul(aug, coef)

	sigma := make([]float64, nTargets)
	for d := 0; d < nTargets; d++ {
		var ss float64
		for r := 0; r < rows; r++ {
			res := targets.At(r, d) - fitted.At(r, d)
			ss += res * res
		}
		sigma[d] = math.Sqrt(ss / float64(rows-1))
		if sigma[d] < minSigma {
			sigma[d] = minSigma
		}
	}

	l.coef = coef
	l.sigma = sigma
	return nil
}

// #endregion fit

// #region predict
// Predict emits a one-component Gaussian per target dimension: the fitted
// mean and the training residual sigma.
func (l *Linear) Predict(ctx context.Context, features *mat.Dense, restart []bool) (mixture.Prediction, error) {
	_ = ctx
	if l.coef == nil {
		return mixture.Prediction{}, fmt.Errorf("linear predict: model not fitted")
	}
	rows, cols := features.Dims()
	cr, nTargets := l.coef.Dims()
	if cols+1 != cr {
		return mixture.Prediction{}, mixture.Shapef("regressor.Linear.Predict",
			"features have %d columns, model was fitted on %d", cols, cr-1)
	}

	var means mat.Dense
	means.Mul(augment(features), l.coef)

	weights := mat.NewDense(rows, nTargets, nil)
	types := mat.NewDense(rows, nTargets, nil)
	params := mat.NewDense(rows, 2*nTargets, nil)
	for r := 0; r < rows; r++ {
		for d := 0; d < nTargets; d++ {
			weights.Set(r, d, 1.0)
			params.Set(r, 2*d, means.At(r, d))
			params.Set(r, 2*d+1, l.sigma[d])
		}
	}

	return mixture.Prediction{Weights: weights, Types: types, Params: params}, nil
}

// #endregion predict

// #region helpers
// augment prepends a ones column for the intercept.
func augment(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for r := 0; r < rows; r++ {
		out.Set(r, 0, 1)
		for c := 0; c < cols; c++ {
			out.Set(r, c+1, x.At(r, c))
		}
	}
	return out
}

// #endregion helpers
