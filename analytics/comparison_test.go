package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchlens/launchlens/predictor"
)

func TestCompareToTypical_AllMetricsPresent(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    250000,
		TeamSize:   8,
		MarketSize: 25000000,
		Revenue:    15000,
		GrowthRate: 10,
	}

	comparisons := CompareToTypical(rec)
	require.Len(t, comparisons, 5)
	for name, cmp := range comparisons {
		assert.Equal(t, 1.0, cmp.Ratio, name)
		assert.Equal(t, Average, cmp.Status, name)
	}
}

func TestCompareToTypical_RatioTwoIsAboveAverage(t *testing.T) {
	// Exactly double the typical funding: strict > keeps it out of the
	// Well Above Average band.
	comparisons := CompareToTypical(predictor.FeatureRecord{Funding: 500000})

	funding := comparisons["funding"]
	assert.Equal(t, 2.0, funding.Ratio)
	assert.Equal(t, AboveAverage, funding.Status)
	assert.Equal(t, 250000.0, funding.Typical)
}

func TestCompareToTypical_Bands(t *testing.T) {
	tests := []struct {
		funding float64
		status  ComparisonStatus
	}{
		{600000, WellAboveAverage}, // ratio 2.4
		{400000, AboveAverage},     // ratio 1.6
		{250000, Average},          // ratio 1.0
		{150000, BelowAverage},     // ratio 0.6
		{50000, WellBelowAverage},  // ratio 0.2
	}

	for _, tt := range tests {
		cmp := CompareToTypical(predictor.FeatureRecord{Funding: tt.funding})["funding"]
		assert.Equal(t, tt.status, cmp.Status, "funding %v", tt.funding)
	}
}

func TestCompareToTypical_RatioRounded(t *testing.T) {
	// 100000/250000 = 0.4; 12345/15000 = 0.823
	comparisons := CompareToTypical(predictor.FeatureRecord{Funding: 100000, Revenue: 12345})
	assert.Equal(t, 0.4, comparisons["funding"].Ratio)
	assert.Equal(t, 0.82, comparisons["revenue"].Ratio)
}

func TestBenchmarkFor(t *testing.T) {
	high := BenchmarkFor(predictor.HighPotential)
	assert.Equal(t, Benchmark{Funding: 80, TeamSize: 75, MarketSize: 85, Revenue: 70, GrowthRate: 80}, high)

	low := BenchmarkFor(predictor.LowPotential)
	assert.Equal(t, 25.0, low.Funding)
	assert.Equal(t, 20.0, low.GrowthRate)

	// Unknown labels degrade to the Moderate profile.
	unknown := BenchmarkFor(predictor.Label(99))
	assert.Equal(t, BenchmarkFor(predictor.ModeratePotential), unknown)
}
