package profile

// #region imports
import (
	"strings"
)

// #endregion

// #region sample

// Sample is a stringified slice of the dataset: column names plus rows
// in column order. Read-only after creation.
type Sample struct {
	Columns []string
	Rows    [][]string
}

// Column returns the values of the named column (case-insensitive).
// Returns nil if the column is not present.
func (s Sample) Column(name string) []string {
	idx := -1
	for i, c := range s.Columns {
		if strings.EqualFold(c, name) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	vals := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		vals[i] = row[idx]
	}
	return vals
}

// Values returns every cell value in the sample, row-major.
func (s Sample) Values() []string {
	var out []string
	for _, row := range s.Rows {
		out = append(out, row...)
	}
	return out
}

// #endregion sample

// #region markdown

// Markdown renders the sample as a GitHub-style markdown table for
// embedding in generation prompts.
func (s Sample) Markdown() string {
	if len(s.Columns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| ")
	b.WriteString(strings.Join(s.Columns, " | "))
	b.WriteString(" |\n|")
	for range s.Columns {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, row := range s.Rows {
		b.WriteString("| ")
		b.WriteString(strings.Join(row, " | "))
		b.WriteString(" |\n")
	}
	return b.String()
}

// #endregion markdown
