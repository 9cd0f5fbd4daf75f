package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kzhou57/vizqa/internal/outcome"
)

// #region main

func main() {
	dbPath := flag.String("db", "./outcomes.db", "path to outcome database")
	runID := flag.String("run", "", "show attempt history for one run")
	limit := flag.Int("limit", 20, "max runs to list")
	flag.Parse()

	store, err := outcome.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(2)
	}
	defer store.Close()

	var exitCode int
	if *runID != "" {
		exitCode = showRun(store, *runID)
	} else {
		exitCode = listRuns(store, *limit)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region output

func listRuns(store *outcome.Store, limit int) int {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query runs: %v\n", err)
		return 2
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return 0
	}

	fmt.Printf("%-36s  %-20s  %-12s  %s\n", "Run", "Started", "Chart", "Dataset")
	for _, r := range runs {
		fmt.Printf("%-36s  %-20s  %-12s  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.ChartType, r.DatasetPath)
	}
	return 0
}

func showRun(store *outcome.Store, runID string) int {
	attempts, err := store.AttemptsForRun(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "query attempts: %v\n", err)
		return 2
	}
	if len(attempts) == 0 {
		fmt.Fprintf(os.Stderr, "no attempts recorded for run %s\n", runID)
		return 1
	}

	fmt.Printf("%-12s  %-8s  %-14s  %s\n", "Kind", "Attempt", "Failure", "Detail")
	for _, a := range attempts {
		failure := a.FailureKind
		if failure == "" {
			failure = "ok"
		}
		fmt.Printf("%-12s  %-8d  %-14s  %s\n", a.Kind, a.AttemptNum, failure, truncate(a.Detail, 80))
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// #endregion output
