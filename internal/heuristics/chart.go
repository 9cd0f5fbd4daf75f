// Package heuristics scores generated artifacts on surface-level
// pattern presence. The scores are proxies, not semantic verification:
// a chart evaluation checks that the code text shows the right plotting
// idiom, not that the rendered chart is truthful. The vision judge
// covers the semantic side.
package heuristics

// #region imports
import (
	"context"
	"strings"

	"github.com/kzhou57/vizqa/internal/gate"
	"github.com/kzhou57/vizqa/internal/profile"
)

// #endregion

// #region weights

// Partial-credit weights. The values are inherited behavior, kept as
// named constants rather than tuned thresholds.
const (
	idiomCredit        = 0.5
	renderCredit       = 0.5
	titleCredit        = 0.3
	xlabelCredit       = 0.3
	ylabelCredit       = 0.3
	legendCredit       = 0.1
	completenessCap    = 1.0
	samplingCredit     = 0.5
	columnSpreadCredit = 0.5
)

// #endregion weights

// #region executor

// Executor runs generated code in a restricted scope. The sandbox
// client satisfies this through a thin adapter.
type Executor interface {
	Execute(ctx context.Context, code string, bindings map[string]any) error
}

// #endregion executor

// #region evaluate-chart

// EvaluateChart scores generated chart code on correctness,
// completeness, and diversity. Ineligible chart types and execution
// failures short-circuit with zero scores and a diagnostic comment;
// retrying is the caller's concern. Always returns a Result, never an
// error.
func EvaluateChart(ctx context.Context, p profile.Profile, chartType gate.ChartType, code string, exec Executor, bindings map[string]any) Result {
	res := newChartResult()

	decision := gate.Check(p, chartType)
	if !decision.Eligible {
		res.comment("%s", decision.Reason)
		return res
	}

	if err := exec.Execute(ctx, code, bindings); err != nil {
		res.comment("error executing chart code: %v", err)
		return res
	}

	res.Scores[CriterionCorrectness] = correctnessScore(decision.Family, code)
	res.Scores[CriterionCompleteness] = completenessScore(code)
	res.Scores[CriterionDiversity] = diversityScore(p, code)
	res.comment("chart generation executed successfully")
	return res
}

// #endregion evaluate-chart

// #region correctness

// correctnessScore grants independent partial credit for a plotting
// idiom matching the chart family and for a render call. Additive and
// uncapped: both credits together reach 1.5.
func correctnessScore(family gate.Family, code string) float64 {
	var score float64

	switch family {
	case gate.FamilyCategoricalCount:
		if strings.Contains(code, "value_counts") {
			score += idiomCredit
		}
	case gate.FamilyNumericPair:
		if containsAny(code, []string{"scatterplot", "lineplot", "heatmap"}) {
			score += idiomCredit
		}
	case gate.FamilyDistribution:
		if containsAny(code, []string{"boxplot", "violinplot"}) {
			score += idiomCredit
		}
	case gate.FamilyTemporal:
		if strings.Contains(code, "lineplot") && strings.Contains(code, "datetime") {
			score += idiomCredit
		}
	}

	if strings.Contains(code, "plt.show()") {
		score += renderCredit
	}
	return score
}

// #endregion correctness

// #region completeness

// completenessScore checks for titles, axis labels, and legends.
func completenessScore(code string) float64 {
	var score float64
	if strings.Contains(code, "plt.title") {
		score += titleCredit
	}
	if strings.Contains(code, "plt.xlabel") {
		score += xlabelCredit
	}
	if strings.Contains(code, "plt.ylabel") {
		score += ylabelCredit
	}
	if strings.Contains(code, "plt.legend") || strings.Contains(code, "autopct") {
		score += legendCredit
	}
	if score > completenessCap {
		score = completenessCap
	}
	return score
}

// #endregion completeness

// #region diversity

// diversityScore rewards randomized row sampling in the code and a
// profile wide enough to plot different columns per chart. The second
// credit is structural potential, not proof the code used it.
func diversityScore(p profile.Profile, code string) float64 {
	var score float64
	if strings.Contains(code, "random.choice") || strings.Contains(code, "sample") {
		score += samplingCredit
	}
	if len(p.NumericColumns) > 2 || len(p.CategoricalColumns) > 2 {
		score += columnSpreadCredit
	}
	return score
}

// #endregion diversity
