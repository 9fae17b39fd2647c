// Package regressor defines the contract a user-supplied generative
// regressor satisfies, a gRPC client for out-of-process models, and an
// in-process linear reference model.
package regressor

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region interface
// Regressor is the fit/predict contract the harness drives. restart, when
// non-nil, carries one flag per feature row (an auxiliary signal column the
// harness strips from the feature frame before the call); implementations
// that do not model restarts ignore it.
type Regressor interface {
	// Fit trains on features and targets. targets is always two-dimensional,
	// shaped (rows, nTargets).
	Fit(ctx context.Context, features, targets *mat.Dense, restart []bool) error
	// Predict returns the mixture triple for each feature row.
	Predict(ctx context.Context, features *mat.Dense, restart []bool) (mixture.Prediction, error)
}

// #endregion interface
