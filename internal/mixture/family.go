package mixture

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// #region family
// GaussianCode is the type code for a diagonal Gaussian component.
const GaussianCode = 0

// Family is one parametric distribution kind a mixture component may carry.
// Params are the per-slot parameter slice in encoding order.
type Family interface {
	// NumParams is the number of scalars one component consumes per dimension.
	NumParams() int
	// LogProb evaluates the log-density at x. Returns ok=false when the
	// parameters are degenerate (the caller attaches slot context).
	LogProb(x float64, params []float64) (lp float64, ok bool)
	// Rand draws one value. Determinism is controlled entirely by src.
	Rand(params []float64, src rand.Source) (v float64, ok bool)
}

// #endregion family

// #region gaussian
// Gaussian is type code 0: params are (mean, std).
type Gaussian struct{}

func (Gaussian) NumParams() int { return 2 }

func (Gaussian) LogProb(x float64, params []float64) (float64, bool) {
	mu, sigma := params[0], params[1]
	if sigma <= 0 {
		return 0, false
	}
	return distuv.Normal{Mu: mu, Sigma: sigma}.LogProb(x), true
}

func (Gaussian) Rand(params []float64, src rand.Source) (float64, bool) {
	mu, sigma := params[0], params[1]
	if sigma <= 0 {
		return 0, false
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand(), true
}

// #endregion gaussian

// #region registry
// families maps type code to implementation. Today only Gaussian; the codec
// and the type column exist so future codes slot in here without layout
// changes.
var families = map[int]Family{
	GaussianCode: Gaussian{},
}

// Lookup resolves a component type code.
func Lookup(code int) (Family, bool) {
	f, ok := families[code]
	return f, ok
}

// #endregion registry
