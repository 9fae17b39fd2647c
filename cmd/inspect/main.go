package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hichamjanati/ramp-workflow/internal/codec"
	"github.com/hichamjanati/ramp-workflow/internal/runlog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to runlog.db")
	last := flag.Int("last", 20, "show N most recent runs")
	run := flag.String("run", "", "show single run detail (decoded record blocks)")
	row := flag.Int("row", 0, "record row to decode in detail mode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/runlog.db [--last N] [--run id] [--row N] [--json]")
		os.Exit(2)
	}

	store, err := runlog.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *run != "" {
		if err := runDetailMode(store, *run, *row, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := runListMode(store, *last, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region list-mode
func runListMode(store *runlog.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(runs)
	}
	fmt.Printf("%-36s  %-8s  %-10s  %s\n", "RUN", "TARGETS", "COMPONENTS", "CREATED")
	for _, r := range runs {
		fmt.Printf("%-36s  %-8d  %-10d  %s\n", r.RunID, r.NTargets, r.Components, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// #endregion list-mode

// #region detail-mode
type blockDetail struct {
	Dim     int       `json:"dim"`
	Count   int       `json:"count"`
	Weights []float64 `json:"weights"`
	Types   []int     `json:"types"`
	Means   []float64 `json:"means"`
	Stds    []float64 `json:"stds"`
}

func runDetailMode(store *runlog.Store, runID string, row int, jsonOut bool) error {
	runRec, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	nTargets := runRec.NTargets

	rec, err := store.LoadRecords(runID)
	if err != nil {
		return err
	}
	rows, _ := rec.Dims()
	if row < 0 || row >= rows {
		return fmt.Errorf("row %d out of range (record has %d rows)", row, rows)
	}

	pred, err := codec.Decode(rec, nTargets)
	if err != nil {
		return err
	}
	shape, err := pred.Validate(nTargets)
	if err != nil {
		return err
	}

	k := shape.ComponentsPerDim
	blocks := make([]blockDetail, nTargets)
	for d := 0; d < nTargets; d++ {
		b := blockDetail{Dim: d, Count: k}
		for c := 0; c < k; c++ {
			slot := d*k + c
			b.Weights = append(b.Weights, pred.Weights.At(row, slot))
			b.Types = append(b.Types, int(pred.Types.At(row, slot)))
			b.Means = append(b.Means, pred.Params.At(row, 2*slot))
			b.Stds = append(b.Stds, pred.Params.At(row, 2*slot+1))
		}
		blocks[d] = b
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(blocks)
	}

	fmt.Printf("run %s, row %d/%d, %d components per dimension\n", runID, row, rows, k)
	for _, b := range blocks {
		fmt.Printf("dim %d:\n", b.Dim)
		for c := 0; c < b.Count; c++ {
			fmt.Printf("  component %d: weight %.6f  type %d  mean %.6f  std %.6f\n",
				c, b.Weights[c], b.Types[c], b.Means[c], b.Stds[c])
		}
	}

	stages, err := store.ListStages(runID)
	if err != nil {
		return err
	}
	if len(stages) > 0 {
		fmt.Println("stages:")
		for _, s := range stages {
			reason := s.Reason
			if reason == "" {
				reason = "-"
			}
			fmt.Printf("  %-10s %-18s %s\n", s.Stage, s.Decision, reason)
		}
	}
	return nil
}

// #endregion detail-mode
