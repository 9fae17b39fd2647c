package codec

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

func samplePrediction(rows, nTargets, k int) mixture.Prediction {
	slots := nTargets * k
	weights := mat.NewDense(rows, slots, nil)
	types := mat.NewDense(rows, slots, nil)
	params := mat.NewDense(rows, 2*slots, nil)
	for r := 0; r < rows; r++ {
		for d := 0; d < nTargets; d++ {
			for c := 0; c < k; c++ {
				slot := d*k + c
				w := float64(c+1) * 2.0 / float64(k*(k+1))
				weights.Set(r, slot, w)
				params.Set(r, 2*slot, float64(r*100+slot))
				params.Set(r, 2*slot+1, 0.5+float64(slot)*0.25)
			}
		}
	}
	return mixture.Prediction{Weights: weights, Types: types, Params: params}
}

func TestLayoutRanges(t *testing.T) {
	l := Layout{NTargets: 3, ComponentsPerDim: 2}
	if l.Step() != 9 {
		t.Fatalf("expected step 9, got %d", l.Step())
	}
	if l.Cols() != 27 {
		t.Fatalf("expected 27 columns, got %d", l.Cols())
	}
	if l.CountCol(1) != 9 {
		t.Fatalf("expected count column 9 for dim 1, got %d", l.CountCol(1))
	}
	if got := l.WeightCols(1); got != (Range{10, 12}) {
		t.Fatalf("wrong weight range for dim 1: %+v", got)
	}
	if got := l.TypeCols(1); got != (Range{12, 14}) {
		t.Fatalf("wrong type range for dim 1: %+v", got)
	}
	if got := l.ParamCols(1); got != (Range{14, 18}) {
		t.Fatalf("wrong param range for dim 1: %+v", got)
	}
	if got := l.Block(2); got != (Range{18, 27}) {
		t.Fatalf("wrong block range for dim 2: %+v", got)
	}
	if l.ParamCols(2).End != l.Block(2).End {
		t.Fatal("params must close the block")
	}
}

func TestEncodeBlockContents(t *testing.T) {
	p := samplePrediction(2, 2, 3)
	rec, err := Encode(p, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l := Layout{NTargets: 2, ComponentsPerDim: 3}

	rows, cols := rec.Dims()
	if rows != 2 || cols != l.Cols() {
		t.Fatalf("record is %dx%d, want 2x%d", rows, cols, l.Cols())
	}
	for d := 0; d < 2; d++ {
		if got := rec.At(1, l.CountCol(d)); got != 3 {
			t.Fatalf("dim %d count column holds %g, want 3", d, got)
		}
	}
	// Weight of component 1, dim 1, row 0 lives at slot 1*3+1 of the input.
	if got, want := rec.At(0, l.WeightCols(1).Start+1), p.Weights.At(0, 4); got != want {
		t.Fatalf("weight misplaced: got %g, want %g", got, want)
	}
	// Std of component 2, dim 0, row 1.
	if got, want := rec.At(1, l.ParamCols(0).Start+5), p.Params.At(1, 5); got != want {
		t.Fatalf("std misplaced: got %g, want %g", got, want)
	}
}

func TestRoundTripExact(t *testing.T) {
	p := samplePrediction(4, 3, 2)
	rec, err := Encode(p, 3)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(rec, 3)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !mat.Equal(back.Weights, p.Weights) {
		t.Fatal("weights did not round-trip exactly")
	}
	if !mat.Equal(back.Types, p.Types) {
		t.Fatal("types did not round-trip exactly")
	}
	if !mat.Equal(back.Params, p.Params) {
		t.Fatal("params did not round-trip exactly")
	}
}

func TestEncodeShapeRejection(t *testing.T) {
	// 5 component slots cannot split across 2 targets.
	p := mixture.Prediction{
		Weights: mat.NewDense(1, 5, nil),
		Types:   mat.NewDense(1, 5, nil),
		Params:  mat.NewDense(1, 10, nil),
	}
	rec, err := Encode(p, 2)
	var shapeErr *mixture.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	if rec != nil {
		t.Fatal("no partial output on rejection")
	}
}

func TestDecodeRejectsDisagreeingCounts(t *testing.T) {
	p := samplePrediction(2, 2, 2)
	rec, err := Encode(p, 2)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	l := Layout{NTargets: 2, ComponentsPerDim: 2}
	rec.Set(1, l.CountCol(1), 3)
	_, err = Decode(rec, 2)
	var shapeErr *mixture.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
}

func TestDecodeRejectsWrongWidth(t *testing.T) {
	rec := mat.NewDense(1, 10, nil)
	rec.Set(0, 0, 2) // claims 2 components -> 9 columns per block
	if _, err := Decode(rec, 1); err == nil {
		t.Fatal("expected width mismatch error")
	}
}
