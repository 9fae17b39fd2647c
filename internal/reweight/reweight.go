// Package reweight recovers per-dimension conditional mixture weights from
// the marginal weights a generative regressor emits. The regressor models
// each target dimension independently; to keep a left-to-right joint
// decomposition consistent, dimension d's weights must be conditioned on the
// realized values of dimensions 0..d-1 and nothing later.
package reweight

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region conditional
// Conditional computes conditional component weights for every sample and
// target dimension. y holds the realized target values, shaped
// (rows, nTargets), ordered the way the caller wants dimensions conditioned
// (slice order is the conditioning order, a caller contract).
//
// The reconstruction only applies to all-Gaussian mixtures; any other type
// code passes the marginal weights through unchanged. The returned matrix is
// dimension-major like Prediction.Weights and is freshly allocated; inputs
// are never written.
func Conditional(p mixture.Prediction, y *mat.Dense, nTargets int) (*mat.Dense, error) {
	shape, err := p.Validate(nTargets)
	if err != nil {
		return nil, err
	}
	yr, yc := y.Dims()
	if yr != shape.Rows || yc != nTargets {
		return nil, mixture.Shapef("reweight.Conditional",
			"realized targets are %dx%d, want %dx%d", yr, yc, shape.Rows, nTargets)
	}

	if !p.AllGaussian(shape) {
		out := mat.NewDense(shape.Rows, shape.Slots(), nil)
		out.Copy(p.Weights)
		return out, nil
	}

	k := shape.ComponentsPerDim
	out := mat.NewDense(shape.Rows, shape.Slots(), nil)
	gaussian, _ := mixture.Lookup(mixture.GaussianCode)

	logp := make([]float64, k*nTargets)     // log-density of y[i] under component c, dim i
	excl := make([]float64, k*(nTargets+1)) // prefix sums over dims, per component

	for r := 0; r < shape.Rows; r++ {
		for c := 0; c < k; c++ {
			for i := 0; i < nTargets; i++ {
				params := []float64{p.Mean(r, i, c, k), p.Std(r, i, c, k)}
				lp, ok := gaussian.LogProb(y.At(r, i), params)
				if !ok {
					return nil, &mixture.DegenerateComponentError{
						Row: r, Dim: i, Component: c, Sigma: params[1],
					}
				}
				logp[c*nTargets+i] = lp
			}
		}

		// excl[c][d] = sum of log-densities over dims strictly below d.
		for c := 0; c < k; c++ {
			excl[c*(nTargets+1)] = 0
			for d := 0; d < nTargets; d++ {
				excl[c*(nTargets+1)+d+1] = excl[c*(nTargets+1)+d] + logp[c*nTargets+d]
			}
		}

		// Marginal weights are shared across dimension blocks; use the first.
		for d := 0; d < nTargets; d++ {
			for c := 0; c < k; c++ {
				w := p.Weights.At(r, c)
				// A zero-weight component stays zero. Its denominator can
				// underflow to 0 when the exp ratios all vanish, which would
				// turn 0/0 into NaN; for positive weights the j=c term keeps
				// the denominator at least w.
				if w == 0 {
					out.Set(r, d*k+c, 0)
					continue
				}
				// Balance-heuristic form: each term is a ratio of exponentials,
				// so a huge or tiny absolute likelihood never overflows. Skip
				// zero-weight terms too: their ratio may overflow to +Inf and
				// 0 * Inf is NaN.
				var denom float64
				ec := excl[c*(nTargets+1)+d]
				for j := 0; j < k; j++ {
					wj := p.Weights.At(r, j)
					if wj == 0 {
						continue
					}
					ej := excl[j*(nTargets+1)+d]
					denom += wj * math.Exp(ej-ec)
				}
				out.Set(r, d*k+c, w/denom)
			}
		}
	}

	return out, nil
}

// #endregion conditional
