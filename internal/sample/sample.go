// Package sample draws joint target vectors from a mixture prediction. The
// sampling path uses raw marginal weights: one component is selected for the
// whole joint draw, so no conditional reconstruction applies.
package sample

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region result
// Result is one joint draw.
type Result struct {
	// Values is a 1 x nTargets row vector, shaped for direct append to a
	// target-column sequence.
	Values *mat.Dense
	// Component is the mixture component the draw came from.
	Component int
	// Renormalized is set when the marginal weights did not sum to one within
	// tolerance and were defensively rescaled before the categorical draw.
	// This is defensive behavior, not a repair: callers should treat it as a
	// signal of a sloppy regressor, not ignore it.
	Renormalized bool
}

// renormTolerance is how far the first-dimension weights may drift from
// summing to one before the defensive rescale kicks in.
const renormTolerance = 1e-6

// #endregion result

// #region draw
// Draw samples one joint target vector from the first row of p. Exactly one
// component is selected per call (the mixture is sampled, never averaged):
// a categorical draw over the first dimension's marginal weights picks
// component c, then each target dimension contributes one draw from its
// slot's registered family with component c's (mean, std). An unregistered
// type code is a ContractError. Determinism is fully controlled by src.
func Draw(p mixture.Prediction, nTargets int, src rand.Source) (Result, error) {
	shape, err := p.Validate(nTargets)
	if err != nil {
		return Result{}, err
	}
	k := shape.ComponentsPerDim

	// Marginal weights are identical across dimension blocks before any
	// reconstruction, so the first block is authoritative.
	weights := make([]float64, k)
	var sum float64
	for c := 0; c < k; c++ {
		weights[c] = p.Weights.At(0, c)
		sum += weights[c]
	}
	renormalized := false
	if math.Abs(sum-1.0) > renormTolerance {
		renormalized = true
		for c := range weights {
			weights[c] /= sum
		}
	}

	component := int(distuv.NewCategorical(weights, src).Rand())

	values := mat.NewDense(1, nTargets, nil)
	for d := 0; d < nTargets; d++ {
		code := int(p.Types.At(0, d*k+component))
		family, ok := mixture.Lookup(code)
		if !ok {
			return Result{}, mixture.Contractf("unknown component type code %d at dim %d, component %d",
				code, d, component)
		}
		params := []float64{p.Mean(0, d, component, k), p.Std(0, d, component, k)}
		v, ok := family.Rand(params, src)
		if !ok {
			return Result{}, &mixture.DegenerateComponentError{
				Row: 0, Dim: d, Component: component, Sigma: params[1],
			}
		}
		values.Set(0, d, v)
	}

	return Result{Values: values, Component: component, Renormalized: renormalized}, nil
}

// #endregion draw
