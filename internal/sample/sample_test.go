package sample

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

func onePrediction(weights []float64, nTargets int, means, stds func(d, c int) float64) mixture.Prediction {
	k := len(weights)
	slots := nTargets * k
	w := mat.NewDense(1, slots, nil)
	ty := mat.NewDense(1, slots, nil)
	pa := mat.NewDense(1, 2*slots, nil)
	for d := 0; d < nTargets; d++ {
		for c := 0; c < k; c++ {
			slot := d*k + c
			w.Set(0, slot, weights[c])
			pa.Set(0, 2*slot, means(d, c))
			pa.Set(0, 2*slot+1, stds(d, c))
		}
	}
	return mixture.Prediction{Weights: w, Types: ty, Params: pa}
}

func TestDrawMembershipFraction(t *testing.T) {
	// Two well-separated components at 0 and 10 with weights 0.3/0.7: over
	// many draws the fraction landing nearer 10 converges to 0.7.
	p := onePrediction([]float64{0.3, 0.7}, 1,
		func(d, c int) float64 { return float64(c) * 10 },
		func(d, c int) float64 { return 1 },
	)
	src := rand.NewSource(1)

	const n = 10000
	nearTen := 0
	for i := 0; i < n; i++ {
		result, err := Draw(p, 1, src)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		v := result.Values.At(0, 0)
		if math.Abs(v-10) < math.Abs(v-0) {
			nearTen++
		}
	}
	frac := float64(nearTen) / n
	if math.Abs(frac-0.7) > 0.02 {
		t.Fatalf("fraction near the 10-mean component is %.4f, want 0.7 +/- 0.02", frac)
	}
}

func TestDrawUsesOneComponentForAllDims(t *testing.T) {
	// Components sit far apart in both dimensions; a joint draw must come
	// from a single component, never mix them across dimensions.
	p := onePrediction([]float64{0.5, 0.5}, 2,
		func(d, c int) float64 { return float64(c) * 1000 },
		func(d, c int) float64 { return 1 },
	)
	src := rand.NewSource(7)

	for i := 0; i < 200; i++ {
		result, err := Draw(p, 2, src)
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		want := float64(result.Component) * 1000
		for d := 0; d < 2; d++ {
			if math.Abs(result.Values.At(0, d)-want) > 100 {
				t.Fatalf("draw %d dim %d is %.1f, far from component %d mean %.0f",
					i, d, result.Values.At(0, d), result.Component, want)
			}
		}
	}
}

func TestDrawDeterministicGivenSource(t *testing.T) {
	p := onePrediction([]float64{0.4, 0.6}, 2,
		func(d, c int) float64 { return float64(d + c) },
		func(d, c int) float64 { return 0.5 },
	)

	r1, err := Draw(p, 2, rand.NewSource(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r2, err := Draw(p, 2, rand.NewSource(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r1.Component != r2.Component || !mat.Equal(r1.Values, r2.Values) {
		t.Fatal("same source must reproduce the same draw")
	}
}

func TestDrawRenormalizesSloppyWeights(t *testing.T) {
	p := onePrediction([]float64{0.3, 0.6}, 1, // sums to 0.9
		func(d, c int) float64 { return float64(c) },
		func(d, c int) float64 { return 1 },
	)
	result, err := Draw(p, 1, rand.NewSource(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Renormalized {
		t.Fatal("defensive renormalization must be surfaced")
	}
}

func TestDrawCleanWeightsNotFlagged(t *testing.T) {
	p := onePrediction([]float64{0.25, 0.75}, 1,
		func(d, c int) float64 { return 0 },
		func(d, c int) float64 { return 1 },
	)
	result, err := Draw(p, 1, rand.NewSource(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Renormalized {
		t.Fatal("exact weights must not be flagged")
	}
}

func TestDrawDegenerateSigma(t *testing.T) {
	p := onePrediction([]float64{1}, 2,
		func(d, c int) float64 { return 0 },
		func(d, c int) float64 { return 1 },
	)
	p.Params.Set(0, 3, 0) // dim 1 sigma
	_, err := Draw(p, 2, rand.NewSource(5))
	var degErr *mixture.DegenerateComponentError
	if !errors.As(err, &degErr) {
		t.Fatalf("expected DegenerateComponentError, got %v", err)
	}
	if degErr.Dim != 1 {
		t.Fatalf("error should name dim 1, got %+v", degErr)
	}
}

func TestDrawRejectsUnknownTypeCode(t *testing.T) {
	p := onePrediction([]float64{0.5, 0.5}, 2,
		func(d, c int) float64 { return 0 },
		func(d, c int) float64 { return 1 },
	)
	p.Types.Set(0, 2, 5) // dim 1, component 0
	var contractErr *mixture.ContractError
	var drew bool
	// The categorical draw decides which component's codes are consulted, so
	// exercise both.
	for seed := uint64(1); seed < 20; seed++ {
		_, err := Draw(p, 2, rand.NewSource(seed))
		if err == nil {
			drew = true
			continue
		}
		if !errors.As(err, &contractErr) {
			t.Fatalf("expected ContractError, got %v", err)
		}
		if contractErr.Msg == "" {
			t.Fatal("contract error must name the offending code")
		}
	}
	if contractErr == nil {
		t.Fatal("no seed selected the mistyped component")
	}
	if !drew {
		t.Fatal("no seed selected the clean component")
	}
}

func TestDrawShapeRejection(t *testing.T) {
	p := mixture.Prediction{
		Weights: mat.NewDense(1, 5, nil),
		Types:   mat.NewDense(1, 5, nil),
		Params:  mat.NewDense(1, 10, nil),
	}
	if _, err := Draw(p, 2, rand.NewSource(1)); err == nil {
		t.Fatal("expected shape error")
	}
}
