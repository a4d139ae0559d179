package analytics

import "github.com/launchlens/launchlens/predictor"

// RiskFactor flags a weakness in the metrics. Each rule fires
// independently; any subset may be present.
type RiskFactor struct {
	Factor      string   `json:"factor"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Strength flags a notable advantage in the metrics.
type Strength struct {
	Factor      string `json:"factor"`
	Description string `json:"description"`
}

// IdentifyRiskFactors evaluates every risk rule against the record. The
// label parameter is accepted for interface stability; no current rule
// depends on it.
func IdentifyRiskFactors(rec predictor.FeatureRecord, _ predictor.Label) []RiskFactor {
	var risks []RiskFactor

	if rec.Funding < 50000 {
		risks = append(risks, RiskFactor{
			Factor:      "Underfunded",
			Severity:    SeverityHigh,
			Description: "Insufficient funding may limit growth",
		})
	}
	if rec.TeamSize < 3 {
		risks = append(risks, RiskFactor{
			Factor:      "Small Team",
			Severity:    SeverityMedium,
			Description: "Limited team may slow execution",
		})
	}
	if rec.Revenue < 5000 {
		risks = append(risks, RiskFactor{
			Factor:      "Low Revenue",
			Severity:    SeverityHigh,
			Description: "Need to establish revenue stream",
		})
	}
	if rec.GrowthRate < 0 {
		risks = append(risks, RiskFactor{
			Factor:      "Negative Growth",
			Severity:    SeverityCritical,
			Description: "Declining metrics require immediate action",
		})
	}
	if rec.MarketSize < 5000000 {
		risks = append(risks, RiskFactor{
			Factor:      "Small Market",
			Severity:    SeverityMedium,
			Description: "Limited market size may cap growth potential",
		})
	}

	return risks
}

// IdentifyStrengths evaluates every strength rule against the record and
// the overall success score.
func IdentifyStrengths(rec predictor.FeatureRecord, successScore float64) []Strength {
	var strengths []Strength

	if rec.Funding > 1000000 {
		strengths = append(strengths, Strength{
			Factor:      "Well-Funded",
			Description: "Strong financial backing for growth",
		})
	}
	if rec.TeamSize > 20 {
		strengths = append(strengths, Strength{
			Factor:      "Strong Team",
			Description: "Substantial team to execute on vision",
		})
	}
	if rec.Revenue > 50000 {
		strengths = append(strengths, Strength{
			Factor:      "Revenue Traction",
			Description: "Demonstrated ability to generate revenue",
		})
	}
	if rec.GrowthRate > 15 {
		strengths = append(strengths, Strength{
			Factor:      "High Growth",
			Description: "Strong momentum and market validation",
		})
	}
	if rec.MarketSize > 100000000 {
		strengths = append(strengths, Strength{
			Factor:      "Large Market",
			Description: "Significant opportunity for expansion",
		})
	}
	if successScore > 70 {
		strengths = append(strengths, Strength{
			Factor:      "Strong Overall Score",
			Description: "Well-balanced metrics across all dimensions",
		})
	}

	return strengths
}
