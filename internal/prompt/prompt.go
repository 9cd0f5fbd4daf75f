// Package prompt builds the natural-language requests sent to the
// generation and judge models. Prompts are plain text; all dataset
// context is rendered by the caller (markdown sample tables, QA blocks).
package prompt

// #region imports
import (
	"fmt"
)

// #endregion

// #region chart-code

// ChartCode builds the chart-code generation request. The generated
// code runs in the executor sidecar with `batch_size` and `file_path`
// pre-bound and must save rendered images under imageDir.
func ChartCode(csvPath, chartType string, batchSize, outputSize int, imageDir string) string {
	return fmt.Sprintf(`You are a Python code assistant. Write Python code to generate a %s using the matplotlib, seaborn library from a CSV dataset.

Instructions:
1. Load the CSV file '%s' using pandas.
2. Use the variable `+"`batch_size`"+` (already defined) to generate %d charts in %s from the dataset with random %d rows.
3. Dynamically inspect the column types:
    - Use `+"`df.select_dtypes(...)`"+` to identify:
        - Numeric columns (for value-based plots)
        - Categorical columns (for count/distribution plots)
        - Datetime columns (for time series plots)
    - Do not use any identifier column(s) to generate charts.
4. Based on the chart type:
    - For bar, pie, treemap, or donut charts: use value counts of a categorical column.
    - For scatter, line, radar, or heatmaps: use combinations of numeric columns.
    - For box or violin plots: plot numeric values grouped by a categorical column.
    - For time series: use a datetime column as x-axis and a numeric column as y-axis.
5. Do not assume column names. Use generic column selection like `+"`numeric_cols[0]`, `categorical_cols[0]`"+`, etc.
6. Add axis labels, titles, and legends where relevant.
7. Include necessary imports, inline comments, and a final command to display or render the chart:
    - `+"`plt.show()`"+` for matplotlib/seaborn
8. Use the data as random as possible, e.g. generate each chart with different rows and columns.
9. Save each chart to the path '%s/' + image file name.

Assume:
- The `+"`batch_size`"+` variable is predefined.
- The file exists at the path %s.

Only output clean, complete Python code.`,
		chartType, csvPath, outputSize, chartType, batchSize, imageDir, csvPath)
}

// #endregion chart-code

// #region qa-pairs

// QAPairs builds the QA-pair generation request around a markdown
// rendering of the dataset sample.
func QAPairs(sampleMarkdown string, outputSize int) string {
	return fmt.Sprintf(`You are a helpful assistant that reads tabular data and generates diverse question-answer pairs from it.

Here is a dataset sample:

%s

Instructions:
- Generate %d natural-sounding question-answer pairs based on the data above.
- Make the questions diverse: factual, inferential, boolean, comparative, descriptive.
- Vary question styles and column combinations.
- Each question should clearly relate to a specific row or pattern in the data.
- Return the result as a JSON array with objects like:
[
    {"question": "...", "answer": "..."},
    ...
]
Only output the JSON data.`,
		sampleMarkdown, outputSize)
}

// #endregion qa-pairs

// #region judge

// Judge builds the multi-modal judge request for one chart image. The
// image itself travels as an attachment; qaBlock is the shared
// "Q: ...\nA: ..." rendering of the full QA set.
func Judge(sampleMarkdown, qaBlock string) string {
	return fmt.Sprintf(`You are an expert in data visualization and question-answer validation.

You are shown a chart (image), and a set of QA pairs that are claimed to be derived from that chart.
Also, the charts and QA pairs are generated from this dataset sample:

%s

Your tasks:
1. Determine if the **answer is correct** based on the chart.
2. Determine if the **question is relevant** to the chart.
3. Identify any **missing data** or misleading visuals in the chart.

Evaluate each QA pair below:

%s

Respond with a numbered list for each QA pair:
- Is the answer correct?
- Is the question relevant?
- Justify briefly.

Also note any issues with the chart itself at the end of the response.`,
		sampleMarkdown, qaBlock)
}

// #endregion judge
