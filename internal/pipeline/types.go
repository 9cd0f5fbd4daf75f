package pipeline

// #region imports
import (
	"errors"
	"fmt"

	"github.com/kzhou57/vizqa/internal/gate"
)

// #endregion

// #region failure-kind

// FailureKind categorizes why a generation attempt failed.
type FailureKind string

const (
	FailGeneration    FailureKind = "generation"    // service error, empty response
	FailNormalization FailureKind = "normalization" // unexpected wrapper format
	FailValidation    FailureKind = "validation"    // artifact fails parsing or the eligibility gate
	FailExecution     FailureKind = "execution"     // generated code raised when run
)

// #endregion failure-kind

// #region attempt-error

// AttemptError tags an attempt failure with its kind so the retry loop
// can log and record it uniformly.
type AttemptError struct {
	Kind FailureKind
	Err  error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

func attemptErr(kind FailureKind, err error) *AttemptError {
	return &AttemptError{Kind: kind, Err: err}
}

// KindOf extracts the failure kind from an attempt error chain.
// Unclassified errors count as generation failures.
func KindOf(err error) FailureKind {
	var ae *AttemptError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return FailGeneration
}

// #endregion attempt-error

// #region terminal-error

// TerminalError is the single failure outcome of an exhausted retry
// loop. It carries the last recorded failure reason.
type TerminalError struct {
	Label    string
	Attempts int
	Last     error
}

func (e *TerminalError) Error() string {
	return fmt.Sprintf("%s: gave up after %d attempts: %v", e.Label, e.Attempts, e.Last)
}

func (e *TerminalError) Unwrap() error {
	return e.Last
}

// #endregion terminal-error

// #region chart-artifact

// ChartArtifact is validated chart code produced by one successful
// generation cycle.
type ChartArtifact struct {
	SourceCode  string
	ChartType   gate.ChartType
	DatasetPath string
}

// Empty reports whether the artifact holds no code, i.e. generation
// terminally failed and downstream stages must short-circuit.
func (a ChartArtifact) Empty() bool {
	return a.SourceCode == ""
}

// #endregion chart-artifact
