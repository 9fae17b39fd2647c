package mixture

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// #region prediction
// Prediction is the mixture triple returned by a generative regressor for a
// batch of samples. Columns are grouped dimension-major: the slot for target
// dimension d, component c sits at column d*k + c of Weights and Types, and
// its (mean, std) pair at columns 2*(d*k+c) and 2*(d*k+c)+1 of Params, where
// k is the per-dimension component count.
//
// A Prediction is immutable once returned; no function in this module writes
// to a Prediction it did not build.
type Prediction struct {
	Weights *mat.Dense
	Types   *mat.Dense
	Params  *mat.Dense
}

// Shape describes the validated dimensions of a Prediction.
type Shape struct {
	Rows             int
	NTargets         int
	ComponentsPerDim int
}

// Slots returns the total component-slot count (k * nTargets).
func (s Shape) Slots() int {
	return s.NTargets * s.ComponentsPerDim
}

// CheckCap rejects a per-dimension component count above max (0 disables).
func (s Shape) CheckCap(max int) error {
	if max > 0 && s.ComponentsPerDim > max {
		return Contractf("%d components per dimension exceeds cap %d", s.ComponentsPerDim, max)
	}
	return nil
}

// #endregion prediction

// #region accessors
// Mean returns the mean of component c for target dimension d at the given row.
func (p Prediction) Mean(row, d, c, componentsPerDim int) float64 {
	return p.Params.At(row, 2*(d*componentsPerDim+c))
}

// Std returns the standard deviation of component c for target dimension d at
// the given row.
func (p Prediction) Std(row, d, c, componentsPerDim int) float64 {
	return p.Params.At(row, 2*(d*componentsPerDim+c)+1)
}

// #endregion accessors

// #region validate
// Validate checks the structural invariants of a prediction against the
// caller's target-dimension count and returns the derived shape. It is
// structure only; the weight-sum invariant is enforced by CheckContract so
// the sampling path can renormalize defensively instead of rejecting.
func (p Prediction) Validate(nTargets int) (Shape, error) {
	const op = "mixture.Validate"
	if nTargets < 1 {
		return Shape{}, Shapef(op, "nTargets must be >= 1, got %d", nTargets)
	}

	wr, wc := p.Weights.Dims()
	tr, tc := p.Types.Dims()
	pr, pc := p.Params.Dims()

	if wr != tr || wr != pr {
		return Shape{}, Shapef(op, "row counts disagree: weights %d, types %d, params %d", wr, tr, pr)
	}
	if wc != tc {
		return Shape{}, Shapef(op, "weights have %d columns, types have %d", wc, tc)
	}
	if tc%nTargets != 0 {
		return Shape{}, Shapef(op, "%d component slots not divisible by %d targets", tc, nTargets)
	}
	if pc != 2*tc {
		return Shape{}, Shapef(op, "params have %d columns, want %d (one mean/std pair per slot)", pc, 2*tc)
	}

	return Shape{
		Rows:             wr,
		NTargets:         nTargets,
		ComponentsPerDim: tc / nTargets,
	}, nil
}

// #endregion validate

// #region contract
// WeightSumTolerance bounds how far a dimension's marginal weights may drift
// from summing to one before the contract check rejects them.
const WeightSumTolerance = 1e-6

// CheckContract verifies regressor-facing guarantees on top of the structural
// ones: every type code must be registered, weights must sum to one per
// dimension, and the per-dimension component count must not exceed
// maxComponents (0 disables the cap). Silent truncation here would corrupt
// the record layout for every downstream consumer, so any violation is a
// hard failure.
func (p Prediction) CheckContract(nTargets, maxComponents int) (Shape, error) {
	shape, err := p.Validate(nTargets)
	if err != nil {
		return Shape{}, err
	}
	if err := shape.CheckCap(maxComponents); err != nil {
		return Shape{}, err
	}
	rows, slots := shape.Rows, shape.Slots()
	for r := 0; r < rows; r++ {
		for s := 0; s < slots; s++ {
			code := int(p.Types.At(r, s))
			if _, ok := Lookup(code); !ok {
				return Shape{}, Contractf("unknown component type code %d at row %d, slot %d", code, r, s)
			}
		}
		for d := 0; d < nTargets; d++ {
			var sum float64
			for c := 0; c < shape.ComponentsPerDim; c++ {
				sum += p.Weights.At(r, d*shape.ComponentsPerDim+c)
			}
			if math.Abs(sum-1.0) > WeightSumTolerance {
				return Shape{}, Contractf("weights for row %d, dim %d sum to %g, want 1", r, d, sum)
			}
		}
	}
	return shape, nil
}

// AllGaussian reports whether every component slot carries the Gaussian type
// code. Conditional weight reconstruction only runs in that case.
func (p Prediction) AllGaussian(shape Shape) bool {
	for r := 0; r < shape.Rows; r++ {
		for s := 0; s < shape.Slots(); s++ {
			if int(p.Types.At(r, s)) != GaussianCode {
				return false
			}
		}
	}
	return true
}

// #endregion contract
