package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/kzhou57/vizqa/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	results, summary := replay.Replay(f)
	os.Exit(printComparison(f, results, summary))
}

// #endregion main

// #region output

// printComparison outputs per-stage results against the fixture's
// expectations and returns the process exit code.
func printComparison(f *replay.Fixture, results []replay.StageResult, summary replay.Summary) int {
	expected := make(map[string]replay.FixtureExpected, len(f.Expected))
	for _, e := range f.Expected {
		expected[e.Stage] = e
	}

	fmt.Printf("%-12s| %-10s| %-10s| %-8s| %s\n", "Stage", "Expected", "Replayed", "Attempts", "Match")
	fmt.Printf("%-12s+%-11s+%-11s+%-9s+%s\n",
		"------------", "-----------", "-----------", "---------", "------")

	diverge := 0
	for _, r := range results {
		exp, ok := expected[r.Stage]
		expLabel := "-"
		match := "OK"
		if ok {
			expLabel = exp.Outcome
			if exp.Outcome != r.Outcome || (exp.AttemptsUsed > 0 && exp.AttemptsUsed != r.AttemptsUsed) {
				match = "DIFF"
				diverge++
			}
		}
		fmt.Printf("%-12s| %-10s| %-10s| %-8d| %s\n", r.Stage, expLabel, r.Outcome, r.AttemptsUsed, match)
		if len(r.FailureKinds) > 0 {
			fmt.Printf("%-12s| failures: %s\n", "", strings.Join(r.FailureKinds, ", "))
		}
	}

	fmt.Printf("\nSummary: %d stages, %d success, %d terminal, %d diverge\n",
		summary.Stages, summary.Successes, summary.Terminals, diverge)

	if diverge > 0 {
		return 1
	}
	return 0
}

// #endregion output
