package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/hichamjanati/ramp-workflow/internal/harness"
	"github.com/hichamjanati/ramp-workflow/internal/regressor"
)

// #region main

func main() {
	addr := flag.String("addr", "", "regressor service address (empty = in-process linear reference)")
	targetList := flag.String("targets", "", "comma-separated target column names")
	restartName := flag.String("restart", "", "restart signal column name")
	seed := flag.Uint64("seed", 0, "random seed (0 = time-based)")
	draws := flag.Int("draws", 1, "number of joint samples to draw")
	flag.Parse()

	if *targetList == "" || flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sample --targets a,b [--addr host:port] [--restart col] [--seed N] [--draws N] data.csv")
		os.Exit(2)
	}
	targets := strings.Split(*targetList, ",")

	frame, err := harness.LoadCSV(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load csv: %v\n", err)
		os.Exit(1)
	}

	var reg regressor.Regressor
	if *addr != "" {
		client, err := regressor.NewClient(*addr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "connect: %v\n", err)
			os.Exit(1)
		}
		defer client.Close()
		reg = client
	} else {
		reg = regressor.NewLinear()
	}

	h := harness.New(harness.Config{
		TargetNames: targets,
		RestartName: *restartName,
	}, reg)

	ctx := context.Background()

	trainFrame, y, err := frame.SplitTruth(targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "target columns: %v\n", err)
		os.Exit(1)
	}
	if err := h.Train(ctx, trainFrame, y, nil); err != nil {
		fmt.Fprintf(os.Stderr, "fit: %v\n", err)
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewSource(*seed)

	// Sample from the last observation row.
	stepFrame := lastRow(trainFrame)

	for i := 0; i < *draws; i++ {
		result, err := h.Step(ctx, stepFrame, src)
		if err != nil {
			fmt.Fprintf(os.Stderr, "step: %v\n", err)
			os.Exit(1)
		}
		values := make([]string, len(targets))
		for d := range targets {
			values[d] = fmt.Sprintf("%s=%.6f", targets[d], result.Values.At(0, d))
		}
		note := ""
		if result.Renormalized {
			note = "  (weights renormalized)"
		}
		fmt.Printf("draw %d: component %d  %s%s\n", i, result.Component, strings.Join(values, "  "), note)
	}
}

// #endregion main

// #region helpers
// lastRow copies the final observation row into a one-row frame.
func lastRow(f harness.Frame) harness.Frame {
	rows, cols := f.Data.Dims()
	data := mat.NewDense(1, cols, nil)
	for c := 0; c < cols; c++ {
		data.Set(0, c, f.Data.At(rows-1, c))
	}
	return harness.Frame{Data: data, Columns: f.Columns}
}

// #endregion helpers
