package replay

// #region imports
import (
	"context"
	"errors"

	"github.com/kzhou57/vizqa/internal/gate"
	"github.com/kzhou57/vizqa/internal/heuristics"
	"github.com/kzhou57/vizqa/internal/normalize"
	"github.com/kzhou57/vizqa/internal/pipeline"
	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/qaset"
)

// #endregion

// #region types

// Outcome labels for a replayed stage.
const (
	OutcomeSuccess  = "success"
	OutcomeTerminal = "terminal"
)

// StageResult captures the outcome of replaying one generation stage.
type StageResult struct {
	Stage        string // "chart_code" | "qa_pairs"
	Outcome      string
	AttemptsUsed int
	FailureKinds []string
	Evaluation   heuristics.Result
}

// Summary aggregates a replay run.
type Summary struct {
	Stages    int
	Successes int
	Terminals int
}

// #endregion types

// #region scripted-executor

// scriptedExecutor replays the recorded per-attempt execution results.
// Calls past the end of the script succeed, so re-execution during
// evaluation does not fail on an exhausted script.
type scriptedExecutor struct {
	errs []string
	next int
}

func (s *scriptedExecutor) Execute(ctx context.Context, code string, bindings map[string]any) error {
	if s.next >= len(s.errs) {
		return nil
	}
	msg := s.errs[s.next]
	s.next++
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

// #endregion scripted-executor

// #region replay

// Replay runs both recorded generation stages through the live retry,
// normalization, validation, and evaluation code paths.
func Replay(f *Fixture) ([]StageResult, Summary) {
	ctx := context.Background()
	prof := f.Profile.ToProfile()
	sample := f.Sample.ToSample()
	chartType := gate.ChartType(f.ChartType)

	results := []StageResult{
		replayChart(ctx, f, prof, chartType),
		replayQA(ctx, f, sample),
	}

	var summary Summary
	summary.Stages = len(results)
	for _, r := range results {
		switch r.Outcome {
		case OutcomeSuccess:
			summary.Successes++
		case OutcomeTerminal:
			summary.Terminals++
		}
	}
	return results, summary
}

func replayChart(ctx context.Context, f *Fixture, prof profile.Profile, chartType gate.ChartType) StageResult {
	res := StageResult{Stage: "chart_code"}
	exec := &scriptedExecutor{errs: execScript(f.ChartAttempts)}

	attempts := 0
	code, err := pipeline.RunWithRetry(ctx, "chart code", f.MaxRetries, func(ctx context.Context, n int) (string, error) {
		attempts = n
		if n > len(f.ChartAttempts) {
			return "", errors.New("fixture has no recorded response for this attempt")
		}
		stripped := normalize.StripFences(f.ChartAttempts[n-1].RawResponse)
		if stripped == "" {
			res.FailureKinds = append(res.FailureKinds, string(pipeline.FailNormalization))
			return "", &pipeline.AttemptError{Kind: pipeline.FailNormalization, Err: errors.New("no content left after stripping fences")}
		}
		if execErr := exec.Execute(ctx, stripped, nil); execErr != nil {
			res.FailureKinds = append(res.FailureKinds, string(pipeline.FailExecution))
			return "", &pipeline.AttemptError{Kind: pipeline.FailExecution, Err: execErr}
		}
		return stripped, nil
	})
	res.AttemptsUsed = attempts

	if err != nil {
		res.Outcome = OutcomeTerminal
		res.Evaluation = heuristics.ChartSkipped("no validated chart code artifact; generation failed terminally")
		return res
	}

	res.Outcome = OutcomeSuccess
	res.Evaluation = heuristics.EvaluateChart(ctx, prof, chartType, code, exec, nil)
	return res
}

func replayQA(ctx context.Context, f *Fixture, sample profile.Sample) StageResult {
	res := StageResult{Stage: "qa_pairs"}

	attempts := 0
	pairs, err := pipeline.RunWithRetry(ctx, "qa pairs", f.MaxRetries, func(ctx context.Context, n int) ([]qaset.QAPair, error) {
		attempts = n
		if n > len(f.QAAttempts) {
			return nil, errors.New("fixture has no recorded response for this attempt")
		}
		stripped := normalize.StripFences(f.QAAttempts[n-1].RawResponse)
		if stripped == "" {
			res.FailureKinds = append(res.FailureKinds, string(pipeline.FailNormalization))
			return nil, &pipeline.AttemptError{Kind: pipeline.FailNormalization, Err: errors.New("no content left after stripping fences")}
		}
		out, perr := qaset.Parse(stripped)
		if perr != nil {
			res.FailureKinds = append(res.FailureKinds, string(pipeline.FailValidation))
			return nil, &pipeline.AttemptError{Kind: pipeline.FailValidation, Err: perr}
		}
		return out, nil
	})
	res.AttemptsUsed = attempts

	if err != nil {
		res.Outcome = OutcomeTerminal
	} else {
		res.Outcome = OutcomeSuccess
	}
	res.Evaluation = heuristics.EvaluateQA(sample, f.OutputSize, pairs)
	return res
}

func execScript(attempts []FixtureAttempt) []string {
	errs := make([]string, len(attempts))
	for i, a := range attempts {
		errs[i] = a.ExecError
	}
	return errs
}

// #endregion replay
