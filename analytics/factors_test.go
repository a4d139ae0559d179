package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchlens/launchlens/predictor"
)

func riskFactorNames(risks []RiskFactor) []string {
	names := make([]string, 0, len(risks))
	for _, r := range risks {
		names = append(names, r.Factor)
	}
	return names
}

func TestIdentifyRiskFactors_AllFire(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    10000,
		TeamSize:   2,
		MarketSize: 1000000,
		Revenue:    1000,
		GrowthRate: -5,
	}

	risks := IdentifyRiskFactors(rec, predictor.LowPotential)
	assert.Equal(t, []string{
		"Underfunded",
		"Small Team",
		"Low Revenue",
		"Negative Growth",
		"Small Market",
	}, riskFactorNames(risks))
}

func TestIdentifyRiskFactors_NoneFire(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    500000,
		TeamSize:   10,
		MarketSize: 50000000,
		Revenue:    25000,
		GrowthRate: 15,
	}
	assert.Empty(t, IdentifyRiskFactors(rec, predictor.ModeratePotential))
}

func TestIdentifyRiskFactors_NegativeGrowthBoundary(t *testing.T) {
	base := predictor.FeatureRecord{
		Funding:    500000,
		TeamSize:   10,
		MarketSize: 50000000,
		Revenue:    25000,
	}

	base.GrowthRate = -1
	risks := IdentifyRiskFactors(base, predictor.ModeratePotential)
	require.Len(t, risks, 1)
	assert.Equal(t, "Negative Growth", risks[0].Factor)
	assert.Equal(t, SeverityCritical, risks[0].Severity)

	base.GrowthRate = 0
	assert.Empty(t, IdentifyRiskFactors(base, predictor.ModeratePotential))
}

func TestIdentifyRiskFactors_Severities(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    10000,
		TeamSize:   2,
		MarketSize: 1000000,
		Revenue:    1000,
		GrowthRate: 5,
	}

	severities := map[string]Severity{}
	for _, r := range IdentifyRiskFactors(rec, predictor.LowPotential) {
		severities[r.Factor] = r.Severity
	}
	assert.Equal(t, SeverityHigh, severities["Underfunded"])
	assert.Equal(t, SeverityMedium, severities["Small Team"])
	assert.Equal(t, SeverityHigh, severities["Low Revenue"])
	assert.Equal(t, SeverityMedium, severities["Small Market"])
}

func TestIdentifyStrengths_ScoreRule(t *testing.T) {
	rec := predictor.FeatureRecord{
		Funding:    500000,
		TeamSize:   10,
		MarketSize: 50000000,
		Revenue:    25000,
		GrowthRate: 10,
	}

	assert.Empty(t, IdentifyStrengths(rec, 70))

	strengths := IdentifyStrengths(rec, 71)
	require.Len(t, strengths, 1)
	assert.Equal(t, "Strong Overall Score", strengths[0].Factor)
}

func TestSeverityDisplayMetadata(t *testing.T) {
	assert.Equal(t, "Critical", SeverityCritical.String())
	assert.Equal(t, "#dc3545", SeverityCritical.Color())
	assert.Equal(t, "Medium", SeverityMedium.String())
	assert.Equal(t, "High", SeverityHigh.String())
}
