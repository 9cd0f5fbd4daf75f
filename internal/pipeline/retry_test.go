package pipeline

import (
	"context"
	"errors"
	"testing"
)

func TestRunWithRetry_FirstAttemptWins(t *testing.T) {
	calls := 0
	out, err := RunWithRetry(context.Background(), "test", 5, func(ctx context.Context, n int) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ok" || calls != 1 {
		t.Errorf("out = %q, calls = %d; want ok, 1", out, calls)
	}
}

func TestRunWithRetry_ExhaustsCeiling(t *testing.T) {
	calls := 0
	_, err := RunWithRetry(context.Background(), "test", 3, func(ctx context.Context, n int) (string, error) {
		calls++
		return "", attemptErr(FailExecution, errors.New("boom"))
	})

	if calls != 3 {
		t.Errorf("calls = %d, want exactly 3", calls)
	}
	var term *TerminalError
	if !errors.As(err, &term) {
		t.Fatalf("expected *TerminalError, got %T", err)
	}
	if term.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", term.Attempts)
	}
	if KindOf(err) != FailExecution {
		t.Errorf("KindOf = %s, want %s (last failure carried through)", KindOf(err), FailExecution)
	}
}

func TestRunWithRetry_RecoversMidway(t *testing.T) {
	calls := 0
	out, err := RunWithRetry(context.Background(), "test", 10, func(ctx context.Context, n int) (int, error) {
		calls++
		if n < 3 {
			return 0, attemptErr(FailValidation, errors.New("bad json"))
		}
		return n, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != 3 || calls != 3 {
		t.Errorf("out = %d, calls = %d; want 3, 3", out, calls)
	}
}

func TestRunWithRetry_ClampsCeiling(t *testing.T) {
	calls := 0
	_, err := RunWithRetry(context.Background(), "test", 0, func(ctx context.Context, n int) (string, error) {
		calls++
		return "", errors.New("nope")
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (ceiling clamped)", calls)
	}
	if err == nil {
		t.Error("expected terminal error")
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != FailGeneration {
		t.Errorf("KindOf = %s, want %s", got, FailGeneration)
	}
}
