package heuristics

// #region imports
import (
	"strings"
)

// #endregion

// #region category

// Category classifies a generated question by style. A question can
// belong to several categories at once.
type Category string

const (
	CategoryFactual     Category = "factual"
	CategoryInferential Category = "inferential"
	CategoryBoolean     Category = "boolean"
	CategoryComparative Category = "comparative"
	CategoryDescriptive Category = "descriptive"
)

// categoryCount is the number of distinct categories, the denominator
// of the diversity score.
const categoryCount = 5

// #endregion category

// #region keywords

var factualKeywords = []string{"what", "which"}

var inferentialKeywords = []string{"why", "how"}

var booleanPrefixes = []string{"is", "are", "does"}

var comparativeKeywords = []string{"compare", "difference"}

var descriptiveKeywords = []string{"describe", "summary"}

// #endregion keywords

// #region classify

// ClassifyQuestion classifies a question via keyword and prefix
// heuristics. No model call. Substring matching is intentional: the
// categories describe phrasing style, not parsed grammar.
func ClassifyQuestion(question string) []Category {
	lower := strings.ToLower(strings.TrimSpace(question))
	if lower == "" {
		return nil
	}

	var cats []Category
	if containsAny(lower, factualKeywords) {
		cats = append(cats, CategoryFactual)
	}
	if containsAny(lower, inferentialKeywords) {
		cats = append(cats, CategoryInferential)
	}
	for _, p := range booleanPrefixes {
		if strings.HasPrefix(lower, p) {
			cats = append(cats, CategoryBoolean)
			break
		}
	}
	if containsAny(lower, comparativeKeywords) {
		cats = append(cats, CategoryComparative)
	}
	if containsAny(lower, descriptiveKeywords) {
		cats = append(cats, CategoryDescriptive)
	}
	return cats
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// #endregion classify
