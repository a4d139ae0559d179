package analytics

import (
	"math"

	"github.com/launchlens/launchlens/predictor"
)

// ComparisonStatus is a closed enumeration of the peer comparison bands.
type ComparisonStatus int

const (
	WellAboveAverage ComparisonStatus = iota
	AboveAverage
	Average
	BelowAverage
	WellBelowAverage
)

// String returns the display name of the comparison status.
func (s ComparisonStatus) String() string {
	switch s {
	case WellAboveAverage:
		return "Well Above Average"
	case AboveAverage:
		return "Above Average"
	case Average:
		return "Average"
	case BelowAverage:
		return "Below Average"
	case WellBelowAverage:
		return "Well Below Average"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ComparisonStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Comparison relates one metric to the typical startup's value.
type Comparison struct {
	Ratio   float64          `json:"ratio"`
	Status  ComparisonStatus `json:"status"`
	Typical float64          `json:"typical_value"`
}

// typicalStartup holds median reference values for each metric.
var typicalStartup = predictor.FeatureRecord{
	Funding:    250000,
	TeamSize:   8,
	MarketSize: 25000000,
	Revenue:    15000,
	GrowthRate: 10,
}

// CompareToTypical relates each metric of the record to the typical
// startup, keyed by metric name. Bands use strict comparisons, so a ratio
// of exactly 2 is Above Average, not Well Above.
func CompareToTypical(rec predictor.FeatureRecord) map[string]Comparison {
	metrics := map[string][2]float64{
		"funding":     {rec.Funding, typicalStartup.Funding},
		"team_size":   {rec.TeamSize, typicalStartup.TeamSize},
		"market_size": {rec.MarketSize, typicalStartup.MarketSize},
		"revenue":     {rec.Revenue, typicalStartup.Revenue},
		"growth_rate": {rec.GrowthRate, typicalStartup.GrowthRate},
	}

	comparisons := make(map[string]Comparison, len(metrics))
	for name, pair := range metrics {
		value, typical := pair[0], pair[1]
		ratio := value / math.Max(typical, 1)

		var status ComparisonStatus
		switch {
		case ratio > 2:
			status = WellAboveAverage
		case ratio > 1.2:
			status = AboveAverage
		case ratio > 0.8:
			status = Average
		case ratio > 0.5:
			status = BelowAverage
		default:
			status = WellBelowAverage
		}

		comparisons[name] = Comparison{
			Ratio:   math.Round(ratio*100) / 100,
			Status:  status,
			Typical: typical,
		}
	}

	return comparisons
}
