// Package replay re-runs recorded generation attempts through the
// normalization, validation, and evaluation stages without touching
// the network or the execution sidecar. Fixtures capture the raw model
// responses from a live run; replaying them is deterministic, so the
// harness doubles as a regression net for the scoring heuristics.
package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kzhou57/vizqa/internal/profile"
)

// #endregion

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description   string            `json:"description"`
	Profile       FixtureProfile    `json:"profile"`
	Sample        FixtureSample     `json:"sample"`
	ChartType     string            `json:"chart_type"`
	OutputSize    int               `json:"output_size"`
	MaxRetries    int               `json:"max_retries"`
	ChartAttempts []FixtureAttempt  `json:"chart_attempts"`
	QAAttempts    []FixtureAttempt  `json:"qa_attempts"`
	Expected      []FixtureExpected `json:"expected"`
}

// FixtureProfile mirrors profile.Profile with JSON tags.
type FixtureProfile struct {
	NumericColumns     []string `json:"numeric_columns"`
	CategoricalColumns []string `json:"categorical_columns"`
	DatetimeColumns    []string `json:"datetime_columns"`
}

// FixtureSample mirrors profile.Sample with JSON tags.
type FixtureSample struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// FixtureAttempt is one recorded model response. ExecError, when
// non-empty, is the execution failure the sidecar reported for the
// normalized code of this attempt.
type FixtureAttempt struct {
	RawResponse string `json:"raw_response"`
	ExecError   string `json:"exec_error,omitempty"`
}

// FixtureExpected captures the expected outcome per stage.
type FixtureExpected struct {
	Stage        string `json:"stage"` // "chart_code" | "qa_pairs"
	Outcome      string `json:"outcome"`
	AttemptsUsed int    `json:"attempts_used"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToProfile converts the fixture profile to a domain profile.
func (p *FixtureProfile) ToProfile() profile.Profile {
	return profile.Profile{
		NumericColumns:     p.NumericColumns,
		CategoricalColumns: p.CategoricalColumns,
		DatetimeColumns:    p.DatetimeColumns,
	}
}

// ToSample converts the fixture sample to a domain sample.
func (s *FixtureSample) ToSample() profile.Sample {
	return profile.Sample{
		Columns: s.Columns,
		Rows:    s.Rows,
	}
}

// #endregion fixture-loader
