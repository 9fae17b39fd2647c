package harness

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func testFrame() Frame {
	return Frame{
		Data: mat.NewDense(3, 4, []float64{
			1, 10, 0, 100,
			2, 20, 1, 200,
			3, 30, 0, 300,
		}),
		Columns: []string{"a", "b", "restart", "y_temp"},
	}
}

func TestSplitRestart(t *testing.T) {
	f := testFrame()
	out, restart := f.SplitRestart("restart")

	if len(restart) != 3 || restart[0] || !restart[1] || restart[2] {
		t.Fatalf("wrong restart flags: %v", restart)
	}
	_, cols := out.Data.Dims()
	if cols != 3 {
		t.Fatalf("restart column not dropped: %d columns", cols)
	}
	if out.Columns[2] != "y_temp" {
		t.Fatalf("column names misaligned: %v", out.Columns)
	}
	if got := out.Data.At(1, 2); got != 200 {
		t.Fatalf("data misaligned after drop: %g", got)
	}
}

func TestSplitRestartMissingColumn(t *testing.T) {
	f := testFrame()
	out, restart := f.SplitRestart("nope")
	if restart != nil {
		t.Fatal("missing restart column must return nil flags")
	}
	_, cols := out.Data.Dims()
	if cols != 4 {
		t.Fatal("frame must be untouched")
	}
}

func TestSplitRestartEmptyName(t *testing.T) {
	f := testFrame()
	if _, restart := f.SplitRestart(""); restart != nil {
		t.Fatal("empty name means no restart signal")
	}
}

func TestSplitTruth(t *testing.T) {
	f := testFrame()
	out, y, err := f.SplitTruth([]string{"temp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yr, yc := y.Dims()
	if yr != 3 || yc != 1 {
		t.Fatalf("truth matrix is %dx%d, want 3x1", yr, yc)
	}
	if y.At(2, 0) != 300 {
		t.Fatalf("wrong truth value: %g", y.At(2, 0))
	}
	_, cols := out.Data.Dims()
	if cols != 3 {
		t.Fatalf("truth column not dropped: %d columns", cols)
	}
}

func TestSplitTruthMissingColumn(t *testing.T) {
	f := testFrame()
	if _, _, err := f.SplitTruth([]string{"pressure"}); err == nil {
		t.Fatal("expected error for missing truth column")
	}
}

func TestCloneIsDeep(t *testing.T) {
	f := testFrame()
	clone := f.Clone()
	clone.Data.Set(0, 0, -1)
	if f.Data.At(0, 0) != 1 {
		t.Fatal("clone shares backing data with original")
	}
}

func TestHeadRows(t *testing.T) {
	f := testFrame()
	h := f.Head(2)
	rows, cols := h.Data.Dims()
	if rows != 2 || cols != 4 {
		t.Fatalf("head is %dx%d, want 2x4", rows, cols)
	}
	if h.Data.At(1, 0) != 2 {
		t.Fatalf("wrong head content: %g", h.Data.At(1, 0))
	}
}
