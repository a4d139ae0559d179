package analytics

import "github.com/launchlens/launchlens/predictor"

// Benchmark holds normalized (0-100) reference values for each metric,
// used for radar-style comparison against the predicted tier.
type Benchmark struct {
	Funding    float64 `json:"funding"`
	TeamSize   float64 `json:"team_size"`
	MarketSize float64 `json:"market_size"`
	Revenue    float64 `json:"revenue"`
	GrowthRate float64 `json:"growth_rate"`
}

// Static per-tier benchmark profiles.
var benchmarks = map[predictor.Label]Benchmark{
	predictor.HighPotential: {
		Funding:    80,
		TeamSize:   75,
		MarketSize: 85,
		Revenue:    70,
		GrowthRate: 80,
	},
	predictor.ModeratePotential: {
		Funding:    50,
		TeamSize:   45,
		MarketSize: 55,
		Revenue:    50,
		GrowthRate: 50,
	},
	predictor.LowPotential: {
		Funding:    25,
		TeamSize:   20,
		MarketSize: 30,
		Revenue:    25,
		GrowthRate: 20,
	},
}

// BenchmarkFor returns the benchmark profile for a label. Unknown labels
// fall back to the Moderate profile; graceful degradation is intentional
// here rather than an error.
func BenchmarkFor(label predictor.Label) Benchmark {
	if b, ok := benchmarks[label]; ok {
		return b
	}
	return benchmarks[predictor.ModeratePotential]
}
