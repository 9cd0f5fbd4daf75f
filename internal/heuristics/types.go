package heuristics

// #region imports
import (
	"fmt"
)

// #endregion

// #region criteria

// Criterion names used as score keys.
const (
	CriterionCorrectness  = "correctness"
	CriterionCompleteness = "completeness"
	CriterionDiversity    = "diversity"
	CriterionRelevance    = "relevance"
)

// #endregion criteria

// #region result

// Result is the output of one heuristic evaluation. Scores are bounded
// per criterion: completeness, diversity, and relevance in [0, 1];
// chart correctness in [0, 1.5] because its two partial credits are
// additive and deliberately uncapped, matching the behavior this
// evaluator reproduces. Immutable once returned.
type Result struct {
	Scores   map[string]float64
	Comments []string
}

func newChartResult() Result {
	return Result{Scores: map[string]float64{
		CriterionCorrectness:  0,
		CriterionCompleteness: 0,
		CriterionDiversity:    0,
	}}
}

func newQAResult() Result {
	return Result{Scores: map[string]float64{
		CriterionCorrectness: 0,
		CriterionDiversity:   0,
		CriterionRelevance:   0,
	}}
}

// ChartSkipped is the zero-score chart result for a run with no
// artifact to evaluate.
func ChartSkipped(reason string) Result {
	res := newChartResult()
	res.comment("%s", reason)
	return res
}

// QASkipped is the zero-score QA result for a run with no parsed set
// to evaluate.
func QASkipped(reason string) Result {
	res := newQAResult()
	res.comment("%s", reason)
	return res
}

func (r *Result) comment(format string, args ...any) {
	if len(args) == 0 {
		r.Comments = append(r.Comments, format)
		return
	}
	r.Comments = append(r.Comments, fmt.Sprintf(format, args...))
}

// #endregion result
