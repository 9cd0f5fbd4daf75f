// Package normalize strips formatting wrappers from raw model output.
// It recovers executable code or parseable JSON from fenced blocks but
// never validates the content itself.
package normalize

// #region imports
import (
	"strings"
)

// #endregion

// #region strip-fences

// StripFences removes a markdown code fence wrapper (with optional
// language tag, e.g. ```python or ```json) from raw model output.
// Only a complete wrapper is stripped: a leading fence line paired with
// a closing fence line, and only when the enclosed content is not
// itself fence-led. Input without such a wrapper is returned trimmed
// but otherwise unchanged, so the function is idempotent:
// StripFences(StripFences(x)) == StripFences(x).
func StripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	if !strings.HasPrefix(lines[0], "```") {
		return trimmed
	}
	if len(lines) == 1 {
		// A bare fence line carries no content.
		return ""
	}
	last := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(last, "```") {
		return trimmed
	}

	inner := strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
	if strings.HasPrefix(inner, "```") {
		// The content is itself a fenced block. Stripping here would
		// unwrap one more layer on every call, so keep the wrapper.
		return trimmed
	}
	return inner
}

// #endregion strip-fences
