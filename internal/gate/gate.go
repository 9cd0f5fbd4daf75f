// Package gate holds the eligibility check applied before any
// generated chart code is evaluated or executed: each chart type
// demands a minimum column structure from the dataset profile.
package gate

// #region imports
import (
	"fmt"

	"github.com/kzhou57/vizqa/internal/profile"
)

// #endregion

// #region family-lookup

// FamilyOf maps a chart type to its structural family.
func FamilyOf(chartType ChartType) Family {
	switch chartType {
	case ChartBar, ChartPie, ChartTreemap, ChartDonut:
		return FamilyCategoricalCount
	case ChartScatter, ChartLine, ChartRadar, ChartHeatmap:
		return FamilyNumericPair
	case ChartBox, ChartViolin:
		return FamilyDistribution
	case ChartTimeSeries:
		return FamilyTemporal
	default:
		return FamilyUnknown
	}
}

// #endregion family-lookup

// #region check

// Check decides whether chartType can be plotted from the profiled
// columns. Unknown chart types and unmet column requirements both come
// back ineligible with a reason; the caller must not execute code for
// an ineligible chart.
func Check(p profile.Profile, chartType ChartType) Decision {
	family := FamilyOf(chartType)

	switch family {
	case FamilyCategoricalCount:
		if len(p.CategoricalColumns) == 0 {
			return ineligible(family, "insufficient columns for %s chart: needs at least 1 categorical column", chartType)
		}
	case FamilyNumericPair:
		if len(p.NumericColumns) < 2 {
			return ineligible(family, "insufficient columns for %s chart: needs at least 2 numeric columns", chartType)
		}
	case FamilyDistribution:
		if len(p.NumericColumns) == 0 || len(p.CategoricalColumns) == 0 {
			return ineligible(family, "insufficient columns for %s chart: needs at least 1 numeric and 1 categorical column", chartType)
		}
	case FamilyTemporal:
		if len(p.DatetimeColumns) == 0 || len(p.NumericColumns) == 0 {
			return ineligible(family, "insufficient columns for %s chart: needs at least 1 datetime and 1 numeric column", chartType)
		}
	default:
		return ineligible(family, "unsupported chart type: %s", chartType)
	}

	return Decision{Eligible: true, Family: family}
}

func ineligible(family Family, format string, args ...any) Decision {
	return Decision{
		Eligible: false,
		Family:   family,
		Reason:   fmt.Sprintf(format, args...),
	}
}

// #endregion check
