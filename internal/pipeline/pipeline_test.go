package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kzhou57/vizqa/internal/gate"
	"github.com/kzhou57/vizqa/internal/outcome"
	"github.com/kzhou57/vizqa/internal/profile"
)

// scriptedClient returns canned responses in order, then errors.
type scriptedClient struct {
	responses []string
	errs      []error
	next      int
}

func (c *scriptedClient) Chat(ctx context.Context, model, promptText string) (string, error) {
	if c.next >= len(c.responses) {
		return "", errors.New("script exhausted")
	}
	i := c.next
	c.next++
	if c.errs != nil && c.errs[i] != nil {
		return "", c.errs[i]
	}
	return c.responses[i], nil
}

type noopExec struct {
	err error
}

func (e noopExec) Execute(ctx context.Context, code string, bindings map[string]any) error {
	return e.err
}

// memRecorder captures records without a database.
type memRecorder struct {
	attempts []outcome.AttemptRecord
	evals    []outcome.EvaluationRecord
}

func (r *memRecorder) RecordAttempt(rec outcome.AttemptRecord) error {
	r.attempts = append(r.attempts, rec)
	return nil
}

func (r *memRecorder) RecordEvaluation(rec outcome.EvaluationRecord) error {
	r.evals = append(r.evals, rec)
	return nil
}

func testDataset(t *testing.T) (*profile.Dataset, profile.Profile) {
	t.Helper()
	csvPath := filepath.Join(t.TempDir(), "covid.csv")
	content := "state,total_cases\nTexas,30000\nOhio,20000\n"
	if err := os.WriteFile(csvPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	dataset, err := profile.Open(csvPath)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	t.Cleanup(func() { dataset.Close() })
	prof, err := dataset.Profile()
	if err != nil {
		t.Fatalf("profile dataset: %v", err)
	}
	return dataset, prof
}

func testParams() Params {
	return Params{
		ChartType:  gate.ChartBar,
		BatchSize:  32,
		OutputSize: 2,
		MaxRetries: 3,
		GenModel:   "test-model",
	}
}

func TestGenerateChartCode_StripsFenceAndRecords(t *testing.T) {
	dataset, prof := testDataset(t)
	client := &scriptedClient{responses: []string{"```python\nplt.show()\n```"}}
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, client, noopExec{}, rec, testParams())
	artifact, err := pipe.GenerateChartCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.SourceCode != "plt.show()" {
		t.Errorf("SourceCode = %q, want fence stripped", artifact.SourceCode)
	}
	if artifact.ChartType != gate.ChartBar {
		t.Errorf("ChartType = %s, want bar", artifact.ChartType)
	}
	if len(rec.attempts) != 1 {
		t.Fatalf("attempts recorded = %d, want 1", len(rec.attempts))
	}
	if rec.attempts[0].FailureKind != "" {
		t.Errorf("successful attempt should have empty failure kind, got %q", rec.attempts[0].FailureKind)
	}
}

func TestGenerateChartCode_TerminalAfterCeiling(t *testing.T) {
	dataset, prof := testDataset(t)
	client := &scriptedClient{
		responses: []string{"", "", ""},
		errs:      []error{errors.New("503"), errors.New("503"), errors.New("503")},
	}
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, client, noopExec{}, rec, testParams())
	artifact, err := pipe.GenerateChartCode(context.Background())

	var term *TerminalError
	if !errors.As(err, &term) {
		t.Fatalf("expected *TerminalError, got %v", err)
	}
	if !artifact.Empty() {
		t.Error("artifact should be empty after terminal failure")
	}
	if len(rec.attempts) != 3 {
		t.Fatalf("attempts recorded = %d, want 3", len(rec.attempts))
	}
	for _, a := range rec.attempts {
		if a.FailureKind != string(FailGeneration) {
			t.Errorf("failure kind = %q, want generation", a.FailureKind)
		}
	}
}

func TestGenerateChartCode_RecoversAfterNormalizationFailure(t *testing.T) {
	dataset, prof := testDataset(t)
	client := &scriptedClient{responses: []string{"```", "plt.show()"}}
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, client, noopExec{}, rec, testParams())
	artifact, err := pipe.GenerateChartCode(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artifact.SourceCode != "plt.show()" {
		t.Errorf("SourceCode = %q", artifact.SourceCode)
	}
	if len(rec.attempts) != 2 {
		t.Fatalf("attempts recorded = %d, want 2", len(rec.attempts))
	}
	if rec.attempts[0].FailureKind != string(FailNormalization) {
		t.Errorf("first failure kind = %q, want normalization", rec.attempts[0].FailureKind)
	}
}

func TestGenerateChartCode_ExecutionFailureKind(t *testing.T) {
	dataset, prof := testDataset(t)
	client := &scriptedClient{responses: []string{"df.plot()", "df.plot()", "df.plot()"}}
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, client, noopExec{err: errors.New("SyntaxError")}, rec, testParams())
	_, err := pipe.GenerateChartCode(context.Background())
	if err == nil {
		t.Fatal("expected terminal error")
	}
	if KindOf(err) != FailExecution {
		t.Errorf("KindOf = %s, want execution", KindOf(err))
	}
}

func TestGenerateQAPairs_ParsesAndPersists(t *testing.T) {
	dataset, prof := testDataset(t)
	qaPath := filepath.Join(t.TempDir(), "qa_pairs.json")
	client := &scriptedClient{responses: []string{
		"```json\n[{\"question\": \"Which state leads?\", \"answer\": \"Texas\"}, {\"question\": \"Why?\", \"answer\": \"Spread\"}]\n```",
	}}
	params := testParams()
	params.QAPairsPath = qaPath

	pipe := New("run-1", dataset, prof, client, noopExec{}, nil, params)
	sample, err := dataset.Head(2)
	if err != nil {
		t.Fatalf("head: %v", err)
	}

	pairs, err := pipe.GenerateQAPairs(context.Background(), sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 2 || pairs[0].Answer != "Texas" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}

	data, err := os.ReadFile(qaPath)
	if err != nil {
		t.Fatalf("qa file not written: %v", err)
	}
	if !strings.Contains(string(data), "Which state leads?") {
		t.Errorf("persisted file missing question: %s", data)
	}
}

func TestGenerateQAPairs_InvalidJSONRetries(t *testing.T) {
	dataset, prof := testDataset(t)
	client := &scriptedClient{responses: []string{
		"not json at all",
		"[{\"question\": \"Q1\", \"answer\": \"A1\"}]",
	}}
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, client, noopExec{}, rec, testParams())
	sample, _ := dataset.Head(2)

	pairs, err := pipe.GenerateQAPairs(context.Background(), sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1", len(pairs))
	}
	if rec.attempts[0].FailureKind != string(FailValidation) {
		t.Errorf("first failure kind = %q, want validation", rec.attempts[0].FailureKind)
	}
}

// deadlineExec records whether the execution context carried a deadline.
type deadlineExec struct {
	sawDeadline bool
}

func (e *deadlineExec) Execute(ctx context.Context, code string, bindings map[string]any) error {
	_, e.sawDeadline = ctx.Deadline()
	return nil
}

func TestEvaluateChartArtifact_BoundsReExecution(t *testing.T) {
	dataset, prof := testDataset(t)
	exec := &deadlineExec{}
	params := testParams()
	params.AttemptTimeout = 30 * time.Second

	pipe := New("run-1", dataset, prof, &scriptedClient{}, exec, nil, params)
	artifact := ChartArtifact{
		SourceCode:  "counts = df['state'].value_counts()\nplt.show()",
		ChartType:   gate.ChartBar,
		DatasetPath: dataset.Path(),
	}

	res := pipe.EvaluateChartArtifact(context.Background(), artifact)

	if !exec.sawDeadline {
		t.Error("evaluation execution should run under the attempt timeout")
	}
	if got := res.Scores["correctness"]; got != 1.0 {
		t.Errorf("correctness = %v, want 1.0", got)
	}
}

func TestEvaluateChartArtifact_EmptyShortCircuits(t *testing.T) {
	dataset, prof := testDataset(t)
	rec := &memRecorder{}

	pipe := New("run-1", dataset, prof, &scriptedClient{}, noopExec{}, rec, testParams())
	res := pipe.EvaluateChartArtifact(context.Background(), ChartArtifact{})

	for crit, score := range res.Scores {
		if score != 0 {
			t.Errorf("%s = %v, want 0 for empty artifact", crit, score)
		}
	}
	if len(rec.evals) != 1 || rec.evals[0].Artifact != "chart" {
		t.Errorf("evaluation not recorded: %+v", rec.evals)
	}
}
