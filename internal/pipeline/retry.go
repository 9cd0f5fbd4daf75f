package pipeline

// #region imports
import (
	"context"
	"log"
)

// #endregion

// #region run-with-retry

// RunWithRetry drives a generation cycle through a bounded attempt
// loop. attempt is called at most maxAttempts times with the 1-based
// attempt number; the first success wins. Exhausting the ceiling
// returns a *TerminalError carrying the last failure. Exactly one
// outcome per invocation, and every attempt is logged with its index
// and failure reason.
func RunWithRetry[T any](ctx context.Context, label string, maxAttempts int, attempt func(ctx context.Context, n int) (T, error)) (T, error) {
	var zero T
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for n := 1; n <= maxAttempts; n++ {
		out, err := attempt(ctx, n)
		if err == nil {
			log.Printf("[PIPE] %s: attempt %d/%d succeeded", label, n, maxAttempts)
			return out, nil
		}
		lastErr = err
		log.Printf("[PIPE] %s: attempt %d/%d failed (%s): %v", label, n, maxAttempts, KindOf(err), err)
	}

	return zero, &TerminalError{Label: label, Attempts: maxAttempts, Last: lastErr}
}

// #endregion run-with-retry
