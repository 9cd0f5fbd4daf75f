// Package qaset holds the question/answer pair model shared by the
// generation pipeline, the heuristic evaluators, and the judge.
package qaset

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// #endregion

// #region qa-pair

// QAPair is one generated question/answer pair.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// #endregion

// #region parse

// Parse decodes a JSON array of {"question": ..., "answer": ...}
// objects. Pairs with empty fields are kept: flagging them is the
// evaluator's job, not the parser's.
func Parse(jsonText string) ([]QAPair, error) {
	var pairs []QAPair
	if err := json.Unmarshal([]byte(jsonText), &pairs); err != nil {
		return nil, fmt.Errorf("parse qa pairs: %w", err)
	}
	return pairs, nil
}

// #endregion parse

// #region block

// Block renders pairs as a "Q: ...\nA: ..." text block for judge
// prompts. The same block is reused across every image in a pass.
func Block(pairs []QAPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("Q: %s\nA: %s", p.Question, p.Answer)
	}
	return strings.Join(parts, "\n")
}

// #endregion block

// #region write-file

// WriteFile persists pairs as an indented JSON array.
func WriteFile(path string, pairs []QAPair) error {
	data, err := json.MarshalIndent(pairs, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal qa pairs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write qa pairs: %w", err)
	}
	return nil
}

// ReadFile loads a previously persisted QA pair file.
func ReadFile(path string) ([]QAPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read qa pairs: %w", err)
	}
	return Parse(string(data))
}

// #endregion write-file
