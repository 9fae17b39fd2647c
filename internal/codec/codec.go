// Package codec packs per-sample mixture predictions into flat fixed-stride
// records and unpacks them again. The record is the only artifact that
// crosses the tool boundary, so packing is purely structural: every value
// lands in the output bit-for-bit, no arithmetic on the way in or out.
package codec

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region encode
// Encode packs a validated prediction into one record row per sample. The
// weights passed in are whatever the caller wants on the wire: marginal
// weights on the sampling path, conditional weights after reconstruction on
// the prediction path.
func Encode(p mixture.Prediction, nTargets int) (*mat.Dense, error) {
	shape, err := p.Validate(nTargets)
	if err != nil {
		return nil, err
	}

	l := Layout{NTargets: nTargets, ComponentsPerDim: shape.ComponentsPerDim}
	k := shape.ComponentsPerDim
	out := mat.NewDense(shape.Rows, l.Cols(), nil)

	for r := 0; r < shape.Rows; r++ {
		for d := 0; d < nTargets; d++ {
			out.Set(r, l.CountCol(d), float64(k))
			w := l.WeightCols(d)
			t := l.TypeCols(d)
			pr := l.ParamCols(d)
			for c := 0; c < k; c++ {
				slot := d*k + c
				out.Set(r, w.Start+c, p.Weights.At(r, slot))
				out.Set(r, t.Start+c, p.Types.At(r, slot))
				out.Set(r, pr.Start+2*c, p.Params.At(r, 2*slot))
				out.Set(r, pr.Start+2*c+1, p.Params.At(r, 2*slot+1))
			}
		}
	}
	return out, nil
}

// #endregion encode

// #region decode
// Decode is the exact inverse of Encode. It needs only nTargets and the
// per-row count column to recover the layout; a downstream scorer parses
// records the same way without reference to this implementation.
func Decode(rec *mat.Dense, nTargets int) (mixture.Prediction, error) {
	const op = "codec.Decode"
	rows, cols := rec.Dims()
	if rows == 0 {
		return mixture.Prediction{}, mixture.Shapef(op, "empty record matrix")
	}
	if nTargets < 1 {
		return mixture.Prediction{}, mixture.Shapef(op, "nTargets must be >= 1, got %d", nTargets)
	}

	k := int(rec.At(0, 0))
	if k < 1 {
		return mixture.Prediction{}, mixture.Shapef(op, "component count %d at row 0 must be >= 1", k)
	}
	l := Layout{NTargets: nTargets, ComponentsPerDim: k}
	if cols != l.Cols() {
		return mixture.Prediction{}, mixture.Shapef(op, "record has %d columns, want %d for %d targets with %d components",
			cols, l.Cols(), nTargets, k)
	}

	weights := mat.NewDense(rows, nTargets*k, nil)
	types := mat.NewDense(rows, nTargets*k, nil)
	params := mat.NewDense(rows, 2*nTargets*k, nil)

	for r := 0; r < rows; r++ {
		for d := 0; d < nTargets; d++ {
			if got := int(rec.At(r, l.CountCol(d))); got != k {
				return mixture.Prediction{}, mixture.Shapef(op,
					"component count %d at row %d, dim %d disagrees with %d at row 0", got, r, d, k)
			}
			w := l.WeightCols(d)
			t := l.TypeCols(d)
			pr := l.ParamCols(d)
			for c := 0; c < k; c++ {
				slot := d*k + c
				weights.Set(r, slot, rec.At(r, w.Start+c))
				types.Set(r, slot, rec.At(r, t.Start+c))
				params.Set(r, 2*slot, rec.At(r, pr.Start+2*c))
				params.Set(r, 2*slot+1, rec.At(r, pr.Start+2*c+1))
			}
		}
	}

	return mixture.Prediction{Weights: weights, Types: types, Params: params}, nil
}

// #endregion decode
