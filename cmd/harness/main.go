package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/hichamjanati/ramp-workflow/internal/harness"
	"github.com/hichamjanati/ramp-workflow/internal/probe"
	"github.com/hichamjanati/ramp-workflow/internal/regressor"
	"github.com/hichamjanati/ramp-workflow/internal/runlog"
)

// #region main
func main() {
	dbPath := envOr("RUNLOG_DB", "runlog.db")
	grpcAddr := os.Getenv("REGRESSOR_ADDR")
	csvPath := envOr("DATA_CSV", "data.csv")
	targetList := envOr("TARGETS", "")
	restartName := os.Getenv("RESTART_COL")
	maxComponents := envIntOr("MAX_COMPONENTS", 0)
	seed := uint64(envIntOr("PROBE_SEED", 42))

	if targetList == "" {
		log.Fatal("TARGETS must name at least one target column (comma separated)")
	}
	targets := strings.Split(targetList, ",")

	frame, err := harness.LoadCSV(csvPath)
	if err != nil {
		log.Fatalf("failed to load %s: %v", csvPath, err)
	}

	store, err := runlog.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open run store: %v", err)
	}
	defer store.Close()

	// An external service when configured, the in-process reference model
	// otherwise.
	var reg regressor.Regressor
	if grpcAddr != "" {
		client, err := regressor.NewClient(grpcAddr)
		if err != nil {
			log.Fatalf("failed to connect to regressor at %s: %v", grpcAddr, err)
		}
		defer client.Close()
		reg = client
	} else {
		reg = regressor.NewLinear()
	}

	h := harness.New(harness.Config{
		TargetNames:   targets,
		RestartName:   restartName,
		MaxComponents: maxComponents,
	}, reg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	run, err := store.CreateRun(len(targets), maxComponents)
	if err != nil {
		log.Fatalf("failed to create run: %v", err)
	}
	fmt.Printf("run %s: %d rows, targets %v\n", run.RunID, rowCount(frame), targets)

	// Fit on the feature frame with truths split off.
	trainFrame, y, err := frame.SplitTruth(targets)
	if err != nil {
		log.Fatalf("target columns: %v", err)
	}
	if err := h.Train(ctx, trainFrame, y, nil); err != nil {
		logStage(store, run.RunID, "fit", "error", err.Error())
		log.Fatalf("fit failed: %v", err)
	}
	logStage(store, run.RunID, "fit", "ok", "")

	// Prediction path: conditional weights, flat records.
	records, err := h.Predict(ctx, frame)
	if err != nil {
		logStage(store, run.RunID, "predict", "error", err.Error())
		log.Fatalf("predict failed: %v", err)
	}
	logStage(store, run.RunID, "predict", "ok", "")

	if err := store.SaveRecords(run.RunID, records); err != nil {
		log.Fatalf("failed to save records: %v", err)
	}
	logStage(store, run.RunID, "encode", "ok", "")

	// Leakage probe.
	results, err := probe.Run(ctx, h, frame, probe.DefaultConfig(), rand.NewSource(seed))
	if err != nil {
		logStage(store, run.RunID, "probe", "error", err.Error())
		log.Fatalf("probe failed: %v", err)
	}
	for _, r := range results {
		decision := "ok"
		if r.Detected {
			decision = "leakage_detected"
		}
		logStage(store, run.RunID, "probe", decision, r.Reason)
		fmt.Printf("probe (size %d, index %d): %s\n", r.Check.Size, r.Check.Index, r.Reason)
	}

	rows, cols := records.Dims()
	fmt.Printf("saved %dx%d record matrix for run %s\n", rows, cols, run.RunID)
}

// #endregion main

// #region helpers
func logStage(store *runlog.Store, runID, stage, decision, reason string) {
	if err := store.LogStage(runlog.StageEntry{RunID: runID, Stage: stage, Decision: decision, Reason: reason}); err != nil {
		log.Printf("provenance write failed: %v", err)
	}
}

func rowCount(f harness.Frame) int {
	rows, _ := f.Data.Dims()
	return rows
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// #endregion helpers
