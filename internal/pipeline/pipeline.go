// Package pipeline coordinates the generation cycles: build a prompt,
// call the generation service, normalize and validate the output, and
// retry with a fresh generation up to a fixed ceiling. Heuristic
// evaluation of whatever the cycles produced happens here too, so a
// terminally failed cycle degrades into zero-scored diagnostics
// instead of an aborted run.
package pipeline

// #region imports
import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/kzhou57/vizqa/internal/gate"
	"github.com/kzhou57/vizqa/internal/heuristics"
	"github.com/kzhou57/vizqa/internal/normalize"
	"github.com/kzhou57/vizqa/internal/outcome"
	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/prompt"
	"github.com/kzhou57/vizqa/internal/qaset"
	"github.com/kzhou57/vizqa/internal/sandbox"
)

// #endregion

// #region interfaces

// ModelClient abstracts the generation service.
type ModelClient interface {
	Chat(ctx context.Context, model, promptText string) (string, error)
}

// Recorder abstracts outcome persistence. May be nil-valued interface
// semantics are not used; pass nil *outcome.Store guards instead.
type Recorder interface {
	RecordAttempt(rec outcome.AttemptRecord) error
	RecordEvaluation(rec outcome.EvaluationRecord) error
}

// ExecAdapter narrows the sandbox client to the evaluator's Executor
// interface, discarding the rendered image paths.
type ExecAdapter struct {
	Client *sandbox.ExecClient
}

func (a ExecAdapter) Execute(ctx context.Context, code string, bindings map[string]any) error {
	_, err := a.Client.Execute(ctx, code, bindings)
	return err
}

// #endregion interfaces

// #region params

// Params bundles the per-run generation parameters.
type Params struct {
	ChartType      gate.ChartType
	BatchSize      int
	OutputSize     int
	MaxRetries     int
	GenModel       string
	ImageDir       string
	QAPairsPath    string
	AttemptTimeout time.Duration // bounds one generation + execution attempt; 0 = unbounded
}

// #endregion params

// #region pipeline-struct

// Pipeline is the top-level coordinator for one dataset snapshot.
type Pipeline struct {
	params  Params
	dataset *profile.Dataset
	prof    profile.Profile
	client  ModelClient
	exec    heuristics.Executor
	store   Recorder
	runID   string
}

// New wires a pipeline. store may be nil to skip persistence.
func New(runID string, dataset *profile.Dataset, prof profile.Profile, client ModelClient, exec heuristics.Executor, store Recorder, params Params) *Pipeline {
	return &Pipeline{
		params:  params,
		dataset: dataset,
		prof:    prof,
		client:  client,
		exec:    exec,
		store:   store,
		runID:   runID,
	}
}

// #endregion pipeline-struct

// #region chart-code

// GenerateChartCode runs the chart-code generation cycle. On terminal
// failure the returned artifact is empty and the error is a
// *TerminalError; callers continue in a degraded state.
func (p *Pipeline) GenerateChartCode(ctx context.Context) (ChartArtifact, error) {
	promptText := prompt.ChartCode(
		p.dataset.Path(), string(p.params.ChartType),
		p.params.BatchSize, p.params.OutputSize, p.params.ImageDir,
	)

	return RunWithRetry(ctx, "chart code", p.params.MaxRetries, func(ctx context.Context, n int) (ChartArtifact, error) {
		artifact, err := p.chartCodeAttempt(ctx, promptText)
		p.recordAttempt("chart_code", n, err)
		return artifact, err
	})
}

func (p *Pipeline) chartCodeAttempt(ctx context.Context, promptText string) (ChartArtifact, error) {
	actx, cancel := p.attemptContext(ctx)
	defer cancel()

	raw, err := p.client.Chat(actx, p.params.GenModel, promptText)
	if err != nil {
		return ChartArtifact{}, attemptErr(FailGeneration, err)
	}

	code := normalize.StripFences(raw)
	if code == "" {
		return ChartArtifact{}, attemptErr(FailNormalization, errors.New("no content left after stripping fences"))
	}

	if err := p.exec.Execute(actx, code, p.Bindings()); err != nil {
		return ChartArtifact{}, attemptErr(FailExecution, err)
	}

	return ChartArtifact{
		SourceCode:  code,
		ChartType:   p.params.ChartType,
		DatasetPath: p.dataset.Path(),
	}, nil
}

// Bindings returns the variables pre-bound in the execution namespace.
// Only these names (plus the sidecar's library handles) are visible to
// generated code.
func (p *Pipeline) Bindings() map[string]any {
	return map[string]any{
		"file_path":   p.dataset.Path(),
		"chart_type":  string(p.params.ChartType),
		"batch_size":  p.params.BatchSize,
		"output_size": p.params.OutputSize,
	}
}

// #endregion chart-code

// #region qa-pairs

// GenerateQAPairs runs the QA-pair generation cycle against the head
// sample of the dataset and persists the validated set when a path is
// configured.
func (p *Pipeline) GenerateQAPairs(ctx context.Context, sample profile.Sample) ([]qaset.QAPair, error) {
	promptText := prompt.QAPairs(sample.Markdown(), p.params.OutputSize)

	pairs, err := RunWithRetry(ctx, "qa pairs", p.params.MaxRetries, func(ctx context.Context, n int) ([]qaset.QAPair, error) {
		out, aerr := p.qaPairsAttempt(ctx, promptText)
		p.recordAttempt("qa_pairs", n, aerr)
		return out, aerr
	})
	if err != nil {
		return nil, err
	}

	if p.params.QAPairsPath != "" {
		if werr := qaset.WriteFile(p.params.QAPairsPath, pairs); werr != nil {
			log.Printf("[PIPE] failed to persist qa pairs: %v", werr)
		}
	}
	return pairs, nil
}

func (p *Pipeline) qaPairsAttempt(ctx context.Context, promptText string) ([]qaset.QAPair, error) {
	actx, cancel := p.attemptContext(ctx)
	defer cancel()

	raw, err := p.client.Chat(actx, p.params.GenModel, promptText)
	if err != nil {
		return nil, attemptErr(FailGeneration, err)
	}

	jsonText := normalize.StripFences(raw)
	if jsonText == "" {
		return nil, attemptErr(FailNormalization, errors.New("no content left after stripping fences"))
	}

	pairs, err := qaset.Parse(jsonText)
	if err != nil {
		return nil, attemptErr(FailValidation, err)
	}
	return pairs, nil
}

// #endregion qa-pairs

// #region evaluation

// EvaluateChartArtifact scores the generated chart code. An empty
// artifact (terminal generation failure) short-circuits with a
// diagnostic zero-score result.
func (p *Pipeline) EvaluateChartArtifact(ctx context.Context, artifact ChartArtifact) heuristics.Result {
	var res heuristics.Result
	if artifact.Empty() {
		res = heuristics.ChartSkipped("no validated chart code artifact; generation failed terminally")
	} else {
		// Evaluation re-executes the code, so it gets the same timeout
		// as a generation attempt.
		actx, cancel := p.attemptContext(ctx)
		defer cancel()
		res = heuristics.EvaluateChart(actx, p.prof, artifact.ChartType, artifact.SourceCode, p.exec, p.Bindings())
	}
	p.recordEvaluation("chart", res)
	return res
}

// EvaluateQASet scores the generated QA set against the sample it was
// generated from. A nil set from a terminally failed cycle hits the
// count gate and degrades into a diagnostic zero-score result.
func (p *Pipeline) EvaluateQASet(sample profile.Sample, pairs []qaset.QAPair) heuristics.Result {
	res := heuristics.EvaluateQA(sample, p.params.OutputSize, pairs)
	p.recordEvaluation("qa", res)
	return res
}

// #endregion evaluation

// #region helpers

func (p *Pipeline) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.params.AttemptTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.params.AttemptTimeout)
}

func (p *Pipeline) recordAttempt(kind string, attemptNum int, attemptErr error) {
	if p.store == nil {
		return
	}
	rec := outcome.AttemptRecord{
		RunID:      p.runID,
		Kind:       kind,
		AttemptNum: attemptNum,
	}
	if attemptErr != nil {
		rec.FailureKind = string(KindOf(attemptErr))
		rec.Detail = attemptErr.Error()
	}
	if err := p.store.RecordAttempt(rec); err != nil {
		log.Printf("[PIPE] failed to record attempt: %v", err)
	}
}

func (p *Pipeline) recordEvaluation(artifact string, res heuristics.Result) {
	if p.store == nil {
		return
	}
	err := p.store.RecordEvaluation(outcome.EvaluationRecord{
		RunID:    p.runID,
		Artifact: artifact,
		Scores:   res.Scores,
		Comments: res.Comments,
	})
	if err != nil {
		log.Printf("[PIPE] failed to record evaluation: %v", err)
	}
}

// #endregion helpers
