// Package validate owns the input validation boundary. Records that pass
// are safe to hand to the prediction service, which does not re-validate.
package validate

import "github.com/launchlens/launchlens/pkg/errors"

// Accepted input ranges.
const (
	MaxFunding    = 1e10 // 10 billion
	MaxTeamSize   = 10000
	MaxMarketSize = 1e12 // 1 trillion
	MaxRevenue    = 1e9  // 1 billion per month
	MinGrowthRate = -100
	MaxGrowthRate = 1000
)

// Metrics checks the five raw inputs against the accepted ranges. All
// violations are collected and returned as one ValidationError whose
// message can be shown to the user verbatim.
func Metrics(funding, teamSize, marketSize, revenue, growthRate float64) error {
	var violations []string

	if funding < 0 {
		violations = append(violations, "Funding cannot be negative")
	}
	if funding > MaxFunding {
		violations = append(violations, "Funding amount seems unrealistic (max: $10B)")
	}

	if teamSize < 1 {
		violations = append(violations, "Team size must be at least 1")
	}
	if teamSize > MaxTeamSize {
		violations = append(violations, "Team size seems unrealistic (max: 10,000)")
	}

	if marketSize < 0 {
		violations = append(violations, "Market size cannot be negative")
	}
	if marketSize > MaxMarketSize {
		violations = append(violations, "Market size seems unrealistic (max: $1T)")
	}

	if revenue < 0 {
		violations = append(violations, "Revenue cannot be negative")
	}
	if revenue > MaxRevenue {
		violations = append(violations, "Monthly revenue seems unrealistic (max: $1B/month)")
	}

	if growthRate < MinGrowthRate {
		violations = append(violations, "Growth rate cannot be less than -100%")
	}
	if growthRate > MaxGrowthRate {
		violations = append(violations, "Growth rate seems unrealistic (max: 1000%)")
	}

	if len(violations) > 0 {
		return errors.NewValidationError(violations)
	}
	return nil
}
