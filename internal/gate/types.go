package gate

// #region chart-type
// ChartType names a supported chart family member.
type ChartType string

const (
	ChartBar        ChartType = "bar"
	ChartPie        ChartType = "pie"
	ChartTreemap    ChartType = "treemap"
	ChartDonut      ChartType = "donut"
	ChartScatter    ChartType = "scatter"
	ChartLine       ChartType = "line"
	ChartRadar      ChartType = "radar"
	ChartHeatmap    ChartType = "heatmap"
	ChartBox        ChartType = "box"
	ChartViolin     ChartType = "violin"
	ChartTimeSeries ChartType = "time_series"
)

// #endregion chart-type

// #region family
// Family groups chart types by the column structure they plot.
type Family string

const (
	FamilyCategoricalCount Family = "categorical_count" // bar, pie, treemap, donut
	FamilyNumericPair      Family = "numeric_pair"      // scatter, line, radar, heatmap
	FamilyDistribution     Family = "distribution"      // box, violin
	FamilyTemporal         Family = "temporal"          // time_series
	FamilyUnknown          Family = "unknown"
)

// #endregion family

// #region decision
// Decision is the output of the eligibility check.
type Decision struct {
	Eligible bool
	Family   Family
	Reason   string // non-empty when ineligible
}

// #endregion decision
