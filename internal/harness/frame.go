package harness

import (
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/mixture"
)

// #region frame
// Frame is a feature matrix with named columns. It is the unit the harness
// consumes: restart signals and realized truth columns are identified by
// name and stripped before the regressor sees the features.
type Frame struct {
	Data    *mat.Dense
	Columns []string
}

// Clone deep-copies the frame so probe perturbations never leak back into
// the caller's data.
func (f Frame) Clone() Frame {
	rows, cols := f.Data.Dims()
	data := mat.NewDense(rows, cols, nil)
	data.Copy(f.Data)
	names := make([]string, len(f.Columns))
	copy(names, f.Columns)
	return Frame{Data: data, Columns: names}
}

// Head returns a frame holding the first n rows (shared backing array).
func (f Frame) Head(n int) Frame {
	_, cols := f.Data.Dims()
	return Frame{
		Data:    f.Data.Slice(0, n, 0, cols).(*mat.Dense),
		Columns: f.Columns,
	}
}

// #endregion frame

// #region split
// columnIndex returns the position of a named column, or -1.
func (f Frame) columnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// SplitRestart strips the named restart column and returns it as a flag
// slice. A missing name (or empty string) leaves the frame untouched and
// returns nil flags, matching the optional nature of the signal.
func (f Frame) SplitRestart(name string) (Frame, []bool) {
	if name == "" {
		return f, nil
	}
	idx := f.columnIndex(name)
	if idx < 0 {
		return f, nil
	}
	rows, _ := f.Data.Dims()
	restart := make([]bool, rows)
	for r := 0; r < rows; r++ {
		restart[r] = f.Data.At(r, idx) != 0
	}
	return f.dropColumns(map[int]bool{idx: true}), restart
}

// SplitTruth strips the realized target columns (named "y_"+target) and
// returns them as a (rows, nTargets) matrix in target order. Every truth
// column must be present: the prediction path cannot condition weights
// without the realized values.
func (f Frame) SplitTruth(targets []string) (Frame, *mat.Dense, error) {
	drop := make(map[int]bool, len(targets))
	rows, _ := f.Data.Dims()
	y := mat.NewDense(rows, len(targets), nil)
	for d, t := range targets {
		idx := f.columnIndex("y_" + t)
		if idx < 0 {
			return Frame{}, nil, mixture.Shapef("harness.SplitTruth", "frame has no column y_%s", t)
		}
		drop[idx] = true
		for r := 0; r < rows; r++ {
			y.Set(r, d, f.Data.At(r, idx))
		}
	}
	return f.dropColumns(drop), y, nil
}

// dropColumns returns a frame without the given column positions.
func (f Frame) dropColumns(drop map[int]bool) Frame {
	rows, cols := f.Data.Dims()
	kept := make([]int, 0, cols)
	names := make([]string, 0, cols)
	for c := 0; c < cols; c++ {
		if !drop[c] {
			kept = append(kept, c)
			names = append(names, f.Columns[c])
		}
	}
	out := mat.NewDense(rows, len(kept), nil)
	for r := 0; r < rows; r++ {
		for i, c := range kept {
			out.Set(r, i, f.Data.At(r, c))
		}
	}
	return Frame{Data: out, Columns: names}
}

// #endregion split
