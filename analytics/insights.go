package analytics

import "github.com/launchlens/launchlens/predictor"

// Assessment is one qualitative judgment about a single dimension of the
// business: a status band, a human-readable message and the band's fixed
// score.
type Assessment struct {
	Status  Status  `json:"status"`
	Message string  `json:"message"`
	Score   float64 `json:"score"`
}

// Color returns the display color for the assessment's score band.
func (a Assessment) Color() string {
	return ScoreColor(a.Score)
}

// InsightBundle aggregates every per-dimension assessment plus the risk and
// strength factors. It is derived fresh on each request and never stored.
type InsightBundle struct {
	FundingAdequacy   Assessment   `json:"funding_adequacy"`
	TeamEfficiency    Assessment   `json:"team_efficiency"`
	MarketOpportunity Assessment   `json:"market_opportunity"`
	RevenueHealth     Assessment   `json:"revenue_health"`
	GrowthMomentum    Assessment   `json:"growth_momentum"`
	RiskFactors       []RiskFactor `json:"risk_factors"`
	Strengths         []Strength   `json:"strengths"`
}

// GenerateInsights derives the full insight bundle for one record.
func GenerateInsights(rec predictor.FeatureRecord, label predictor.Label, successScore float64) InsightBundle {
	return InsightBundle{
		FundingAdequacy:   AnalyzeFundingAdequacy(rec),
		TeamEfficiency:    AnalyzeTeamEfficiency(rec),
		MarketOpportunity: AnalyzeMarketOpportunity(rec),
		RevenueHealth:     AnalyzeRevenueHealth(rec),
		GrowthMomentum:    AnalyzeGrowthMomentum(rec),
		RiskFactors:       IdentifyRiskFactors(rec, label),
		Strengths:         IdentifyStrengths(rec, successScore),
	}
}

// AnalyzeFundingAdequacy judges funding relative to team size.
func AnalyzeFundingAdequacy(rec predictor.FeatureRecord) Assessment {
	fundingPerEmployee := rec.Funding / max1(rec.TeamSize)

	switch {
	case fundingPerEmployee > 100000:
		return Assessment{StatusStrong, "Funding level is healthy relative to team size", 85}
	case fundingPerEmployee > 50000:
		return Assessment{StatusAdequate, "Funding is reasonable but could be improved", 60}
	default:
		return Assessment{StatusConcern, "Funding may be stretched thin for team size", 35}
	}
}

// AnalyzeTeamEfficiency judges revenue per team member.
func AnalyzeTeamEfficiency(rec predictor.FeatureRecord) Assessment {
	revenuePerEmployee := rec.Revenue / max1(rec.TeamSize)

	switch {
	case revenuePerEmployee > 10000:
		return Assessment{StatusExcellent, "High revenue per employee indicates strong efficiency", 90}
	case revenuePerEmployee > 5000:
		return Assessment{StatusGood, "Team efficiency is solid", 70}
	default:
		return Assessment{StatusNeedsImprovement, "Focus on improving revenue per team member", 40}
	}
}

// AnalyzeMarketOpportunity judges annualized revenue against the market
// size: the smaller the captured share, the larger the remaining upside.
func AnalyzeMarketOpportunity(rec predictor.FeatureRecord) Assessment {
	revenueMarketRatio := (rec.Revenue * 12) / max1(rec.MarketSize)

	switch {
	case revenueMarketRatio < 0.001:
		return Assessment{StatusHugeOpportunity, "Large untapped market potential", 95}
	case revenueMarketRatio < 0.01:
		return Assessment{StatusGoodOpportunity, "Significant room for market expansion", 75}
	default:
		return Assessment{StatusLimited, "Consider expanding to new markets", 45}
	}
}

// AnalyzeRevenueHealth judges absolute monthly revenue.
func AnalyzeRevenueHealth(rec predictor.FeatureRecord) Assessment {
	switch {
	case rec.Revenue > 100000:
		return Assessment{StatusStrong, "Revenue demonstrates strong product-market fit", 85}
	case rec.Revenue > 10000:
		return Assessment{StatusGrowing, "Revenue shows promising early traction", 65}
	default:
		return Assessment{StatusEarlyStage, "Focus on achieving product-market fit", 35}
	}
}

// AnalyzeGrowthMomentum judges the monthly growth rate.
func AnalyzeGrowthMomentum(rec predictor.FeatureRecord) Assessment {
	switch {
	case rec.GrowthRate > 20:
		return Assessment{StatusExceptional, "Outstanding growth momentum", 95}
	case rec.GrowthRate > 10:
		return Assessment{StatusStrong, "Solid growth trajectory", 75}
	case rec.GrowthRate > 5:
		return Assessment{StatusModerate, "Steady growth, room for acceleration", 55}
	default:
		return Assessment{StatusSlow, "Growth needs significant improvement", 30}
	}
}

func max1(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
