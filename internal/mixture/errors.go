package mixture

import "fmt"

// #region shape-error
// ShapeError reports prediction arrays that disagree on row count, column
// grouping, or the uniform component-count-per-dimension invariant.
type ShapeError struct {
	Op  string
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: %s", e.Op, e.Msg)
}

// Shapef builds a ShapeError with a formatted message.
func Shapef(op, format string, args ...interface{}) *ShapeError {
	return &ShapeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// #endregion shape-error

// #region degenerate-error
// DegenerateComponentError reports a non-positive standard deviation found
// while evaluating or sampling a Gaussian component. It carries the location
// so the caller can point at the offending slot.
type DegenerateComponentError struct {
	Row       int
	Dim       int
	Component int
	Sigma     float64
}

func (e *DegenerateComponentError) Error() string {
	return fmt.Sprintf("degenerate component: sigma %g <= 0 at row %d, dim %d, component %d",
		e.Sigma, e.Row, e.Dim, e.Component)
}

// #endregion degenerate-error

// #region contract-error
// ContractError reports a regressor output that violates the prediction
// contract: an unknown component type code, a slot count that does not divide
// across target dimensions, or a component count above the configured cap.
type ContractError struct {
	Msg string
}

func (e *ContractError) Error() string {
	return "regressor contract violation: " + e.Msg
}

// Contractf builds a ContractError with a formatted message.
func Contractf(format string, args ...interface{}) *ContractError {
	return &ContractError{Msg: fmt.Sprintf(format, args...)}
}

// #endregion contract-error
