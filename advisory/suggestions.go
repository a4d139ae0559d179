// Package advisory generates ranked strategic suggestions from a feature
// record and its predicted tier. Rules are evaluated in fixed definition
// order and each appends at most one suggestion; the result keeps the first
// five matches.
package advisory

import "github.com/launchlens/launchlens/predictor"

// MaxSuggestions caps the number of suggestions returned.
const MaxSuggestions = 5

// fallback is emitted when no rule fires.
const fallback = "Keep iterating and focusing on customer needs!"

// Suggestions evaluates the rule list against the record and label.
func Suggestions(label predictor.Label, rec predictor.FeatureRecord) []string {
	var suggestions []string

	if rec.Funding < 100000 {
		suggestions = append(suggestions, "Consider seeking additional funding to scale operations")
	}

	// Team size extremes are mutually exclusive.
	if rec.TeamSize < 5 {
		suggestions = append(suggestions, "Growing your team could help accelerate development")
	} else if rec.TeamSize > 50 && rec.Revenue < 50000 {
		suggestions = append(suggestions, "Team size seems large relative to revenue - optimize costs")
	}

	if rec.MarketSize < 10000000 {
		suggestions = append(suggestions, "Consider expanding to larger markets for better growth potential")
	}

	if rec.Revenue < 10000 {
		suggestions = append(suggestions, "Focus on revenue generation and finding product-market fit")
	}

	// Growth extremes are mutually exclusive.
	if rec.GrowthRate < 5 {
		suggestions = append(suggestions, "Implement aggressive growth strategies to improve momentum")
	} else if rec.GrowthRate > 30 {
		suggestions = append(suggestions, "Excellent growth! Ensure infrastructure scales with demand")
	}

	switch label {
	case predictor.HighPotential:
		suggestions = append(suggestions,
			"Strong fundamentals! Focus on execution and scaling",
			"Consider strategic partnerships to accelerate market dominance",
		)
	case predictor.ModeratePotential:
		suggestions = append(suggestions,
			"Solid foundation - identify key metrics to push to next level",
			"Analyze competitors and find differentiation opportunities",
		)
	default:
		suggestions = append(suggestions,
			"Pivot consideration: Reassess product-market fit",
			"Focus on lean operations and validated learning",
			"Seek mentorship and advisory support",
		)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, fallback)
	}
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}
