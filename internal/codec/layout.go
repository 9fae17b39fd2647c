package codec

// #region range
// Range is a half-open [Start, End) column interval in a record row.
type Range struct {
	Start int
	End   int
}

// Width returns the number of columns the range spans.
func (r Range) Width() int {
	return r.End - r.Start
}

// #endregion range

// #region layout
// Layout maps (dimension, section) to column ranges of the fixed-stride
// record. Each target dimension owns one block of Step() columns:
//
//	[count, w_0..w_{k-1}, t_0..t_{k-1}, m_0, s_0, .., m_{k-1}, s_{k-1}]
//
// with k = ComponentsPerDim. Keeping the stride arithmetic here, and nowhere
// else, is what a ragged per-dimension layout would have to replace.
type Layout struct {
	NTargets         int
	ComponentsPerDim int
}

// Step returns the per-dimension block width: one count column, k weights,
// k type codes, and 2k parameter scalars.
func (l Layout) Step() int {
	return 1 + 4*l.ComponentsPerDim
}

// Cols returns the total record width.
func (l Layout) Cols() int {
	return l.NTargets * l.Step()
}

// Block returns the full column range of dimension d's block.
func (l Layout) Block(d int) Range {
	start := d * l.Step()
	return Range{Start: start, End: start + l.Step()}
}

// CountCol returns the column holding dimension d's component count.
func (l Layout) CountCol(d int) int {
	return d * l.Step()
}

// WeightCols returns the column range of dimension d's component weights.
func (l Layout) WeightCols(d int) Range {
	start := d*l.Step() + 1
	return Range{Start: start, End: start + l.ComponentsPerDim}
}

// TypeCols returns the column range of dimension d's component type codes.
func (l Layout) TypeCols(d int) Range {
	start := d*l.Step() + 1 + l.ComponentsPerDim
	return Range{Start: start, End: start + l.ComponentsPerDim}
}

// ParamCols returns the column range of dimension d's interleaved
// (mean, std) pairs.
func (l Layout) ParamCols(d int) Range {
	start := d*l.Step() + 1 + 2*l.ComponentsPerDim
	return Range{Start: start, End: start + 2*l.ComponentsPerDim}
}

// #endregion layout
