package heuristics

// #region imports
import (
	"strings"

	"github.com/kzhou57/vizqa/internal/profile"
	"github.com/kzhou57/vizqa/internal/qaset"
)

// #endregion

// #region evaluate-qa

// EvaluateQA scores a parsed QA set against the dataset sample it was
// generated from. A count mismatch short-circuits with zero scores.
// expectedCount of zero yields zero correctness and relevance by
// definition, not an error. Always returns a Result.
func EvaluateQA(sample profile.Sample, expectedCount int, pairs []qaset.QAPair) Result {
	res := newQAResult()

	if len(pairs) != expectedCount {
		res.comment("expected %d QA pairs, got %d", expectedCount, len(pairs))
		return res
	}

	res.Scores[CriterionCorrectness] = qaCorrectness(sample, expectedCount, pairs, &res)
	res.Scores[CriterionDiversity] = qaDiversity(pairs)
	res.Scores[CriterionRelevance] = qaRelevance(sample, expectedCount, pairs)
	res.comment("QA pairs evaluated successfully")
	return res
}

// #endregion evaluate-qa

// #region correctness

// qaCorrectness counts pairs whose question names a column
// (case-insensitive) and whose answer quotes a value from that column.
// Pairs with an empty question or answer are flagged and skipped, not
// dropped from the denominator.
func qaCorrectness(sample profile.Sample, expectedCount int, pairs []qaset.QAPair, res *Result) float64 {
	if expectedCount == 0 {
		return 0
	}

	correct := 0
	for _, pair := range pairs {
		if pair.Question == "" || pair.Answer == "" {
			res.comment("empty question or answer detected")
			continue
		}
		lowerQuestion := strings.ToLower(pair.Question)
		for _, col := range sample.Columns {
			if !strings.Contains(lowerQuestion, strings.ToLower(col)) {
				continue
			}
			if valueInAnswer(sample.Column(col), pair.Answer) {
				correct++
				break
			}
		}
	}
	return float64(correct) / float64(expectedCount)
}

func valueInAnswer(values []string, answer string) bool {
	for _, v := range values {
		if v != "" && strings.Contains(answer, v) {
			return true
		}
	}
	return false
}

// #endregion correctness

// #region diversity

// qaDiversity measures the spread of question styles across the five
// categories.
func qaDiversity(pairs []qaset.QAPair) float64 {
	seen := make(map[Category]bool)
	for _, pair := range pairs {
		for _, cat := range ClassifyQuestion(pair.Question) {
			seen[cat] = true
		}
	}
	return float64(len(seen)) / float64(categoryCount)
}

// #endregion diversity

// #region relevance

// qaRelevance counts pairs whose question references a column name or
// any cell value from the sample, case-insensitive either way.
func qaRelevance(sample profile.Sample, expectedCount int, pairs []qaset.QAPair) float64 {
	if expectedCount == 0 {
		return 0
	}

	relevant := 0
	for _, pair := range pairs {
		lowerQuestion := strings.ToLower(pair.Question)
		if questionMentions(lowerQuestion, sample.Columns) || questionMentions(lowerQuestion, sample.Values()) {
			relevant++
		}
	}
	return float64(relevant) / float64(expectedCount)
}

func questionMentions(lowerQuestion string, candidates []string) bool {
	for _, c := range candidates {
		if c != "" && strings.Contains(lowerQuestion, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

// #endregion relevance
