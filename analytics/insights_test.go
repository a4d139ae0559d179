package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchlens/launchlens/predictor"
)

func TestAnalyzeFundingAdequacy_Bands(t *testing.T) {
	tests := []struct {
		name   string
		rec    predictor.FeatureRecord
		status Status
		score  float64
	}{
		{"strong", predictor.FeatureRecord{Funding: 1200000, TeamSize: 10}, StatusStrong, 85},
		{"adequate", predictor.FeatureRecord{Funding: 600000, TeamSize: 10}, StatusAdequate, 60},
		{"concern", predictor.FeatureRecord{Funding: 100000, TeamSize: 10}, StatusConcern, 35},
		{"zero team clamps to one", predictor.FeatureRecord{Funding: 150000, TeamSize: 0}, StatusStrong, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AnalyzeFundingAdequacy(tt.rec)
			assert.Equal(t, tt.status, a.Status)
			assert.Equal(t, tt.score, a.Score)
			assert.NotEmpty(t, a.Message)
		})
	}
}

func TestAnalyzeTeamEfficiency_Bands(t *testing.T) {
	assert.Equal(t, StatusExcellent, AnalyzeTeamEfficiency(predictor.FeatureRecord{Revenue: 200000, TeamSize: 10}).Status)
	assert.Equal(t, StatusGood, AnalyzeTeamEfficiency(predictor.FeatureRecord{Revenue: 60000, TeamSize: 10}).Status)
	assert.Equal(t, StatusNeedsImprovement, AnalyzeTeamEfficiency(predictor.FeatureRecord{Revenue: 30000, TeamSize: 10}).Status)
}

func TestAnalyzeMarketOpportunity_Bands(t *testing.T) {
	// 12 * 1000 / 50e6 = 0.00024 < 0.001
	assert.Equal(t, StatusHugeOpportunity, AnalyzeMarketOpportunity(predictor.FeatureRecord{Revenue: 1000, MarketSize: 50000000}).Status)
	// 12 * 25000 / 50e6 = 0.006 < 0.01
	assert.Equal(t, StatusGoodOpportunity, AnalyzeMarketOpportunity(predictor.FeatureRecord{Revenue: 25000, MarketSize: 50000000}).Status)
	// 12 * 100000 / 50e6 = 0.024
	assert.Equal(t, StatusLimited, AnalyzeMarketOpportunity(predictor.FeatureRecord{Revenue: 100000, MarketSize: 50000000}).Status)
}

func TestAnalyzeRevenueHealth_Bands(t *testing.T) {
	assert.Equal(t, StatusStrong, AnalyzeRevenueHealth(predictor.FeatureRecord{Revenue: 150000}).Status)
	assert.Equal(t, StatusGrowing, AnalyzeRevenueHealth(predictor.FeatureRecord{Revenue: 25000}).Status)
	assert.Equal(t, StatusEarlyStage, AnalyzeRevenueHealth(predictor.FeatureRecord{Revenue: 10000}).Status)
}

func TestAnalyzeGrowthMomentum_Bands(t *testing.T) {
	assert.Equal(t, StatusExceptional, AnalyzeGrowthMomentum(predictor.FeatureRecord{GrowthRate: 25}).Status)
	assert.Equal(t, StatusStrong, AnalyzeGrowthMomentum(predictor.FeatureRecord{GrowthRate: 15}).Status)
	assert.Equal(t, StatusModerate, AnalyzeGrowthMomentum(predictor.FeatureRecord{GrowthRate: 7}).Status)
	assert.Equal(t, StatusSlow, AnalyzeGrowthMomentum(predictor.FeatureRecord{GrowthRate: 5}).Status)
	assert.Equal(t, StatusSlow, AnalyzeGrowthMomentum(predictor.FeatureRecord{GrowthRate: -10}).Status)
}

func TestGenerateInsights_Aggregates(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    2000000,
		TeamSize:   25,
		MarketSize: 200000000,
		Revenue:    120000,
		GrowthRate: 22,
	}

	bundle := GenerateInsights(rec, predictor.HighPotential, 85)

	assert.Equal(t, StatusConcern, bundle.FundingAdequacy.Status) // 80k per employee
	assert.Equal(t, StatusStrong, bundle.RevenueHealth.Status)
	assert.Equal(t, StatusExceptional, bundle.GrowthMomentum.Status)
	assert.Empty(t, bundle.RiskFactors)

	factors := make([]string, 0, len(bundle.Strengths))
	for _, s := range bundle.Strengths {
		factors = append(factors, s.Factor)
	}
	assert.Equal(t, []string{
		"Well-Funded",
		"Strong Team",
		"Revenue Traction",
		"High Growth",
		"Large Market",
		"Strong Overall Score",
	}, factors)
}

func TestAssessmentColor(t *testing.T) {
	assert.Equal(t, "#28a745", Assessment{Score: 85}.Color())
	assert.Equal(t, "#ffc107", Assessment{Score: 55}.Color())
	assert.Equal(t, "#dc3545", Assessment{Score: 35}.Color())
}
