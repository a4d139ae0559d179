package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/launchlens/launchlens/analytics"
	"github.com/launchlens/launchlens/predictor"
)

const (
	bannerWidth = 60
	reportTitle = "AI STARTUP SUCCESS PREDICTOR - ANALYSIS REPORT"
)

// Report renders the plain-text analysis report. Section banners and their
// order are fixed: INPUT METRICS, PREDICTION RESULTS, PROBABILITY
// BREAKDOWN, then DETAILED INSIGHTS when a bundle is provided.
func Report(rec predictor.FeatureRecord, result predictor.PredictionResult, bundle *analytics.InsightBundle, now time.Time) string {
	var lines []string

	heavy := strings.Repeat("=", bannerWidth)
	light := strings.Repeat("-", bannerWidth)

	section := func(title string) {
		lines = append(lines, "\n"+light, title, light)
	}

	lines = append(lines, heavy, reportTitle, heavy)
	lines = append(lines, fmt.Sprintf("\nGenerated: %s\n", now.Format(timestampLayout)))

	section("INPUT METRICS")
	lines = append(lines,
		fmt.Sprintf("Funding Amount:        $%s", commas(rec.Funding)),
		fmt.Sprintf("Team Size:             %g members", rec.TeamSize),
		fmt.Sprintf("Market Size:           $%s", commas(rec.MarketSize)),
		fmt.Sprintf("Monthly Revenue:       $%s", commas(rec.Revenue)),
		fmt.Sprintf("Growth Rate:           %g%%", rec.GrowthRate),
	)

	section("PREDICTION RESULTS")
	lines = append(lines,
		fmt.Sprintf("Success Score:         %g/100", result.SuccessScore),
		fmt.Sprintf("Prediction:            %s", result.Label),
		fmt.Sprintf("Confidence:            %g%%", result.Confidence),
	)

	section("PROBABILITY BREAKDOWN")
	lines = append(lines,
		fmt.Sprintf("Low Potential:         %g%%", result.Probabilities.Low),
		fmt.Sprintf("Moderate Potential:    %g%%", result.Probabilities.Moderate),
		fmt.Sprintf("High Potential:        %g%%", result.Probabilities.High),
	)

	if bundle != nil {
		section("DETAILED INSIGHTS")

		if len(bundle.Strengths) > 0 {
			lines = append(lines, "\nSTRENGTHS:")
			for _, s := range bundle.Strengths {
				lines = append(lines, fmt.Sprintf("  - %s: %s", s.Factor, s.Description))
			}
		}

		if len(bundle.RiskFactors) > 0 {
			lines = append(lines, "\nRISK FACTORS:")
			for _, r := range bundle.RiskFactors {
				lines = append(lines, fmt.Sprintf("  - %s (%s): %s", r.Factor, r.Severity, r.Description))
			}
		}

		lines = append(lines,
			fmt.Sprintf("\nFunding Adequacy:      %s", bundle.FundingAdequacy.Status),
			fmt.Sprintf("  %s", bundle.FundingAdequacy.Message),
			fmt.Sprintf("\nTeam Efficiency:       %s", bundle.TeamEfficiency.Status),
			fmt.Sprintf("  %s", bundle.TeamEfficiency.Message),
			fmt.Sprintf("\nGrowth Momentum:       %s", bundle.GrowthMomentum.Status),
			fmt.Sprintf("  %s", bundle.GrowthMomentum.Message),
		)
	}

	lines = append(lines, "\n"+heavy, "END OF REPORT", heavy)

	return strings.Join(lines, "\n")
}

// commas formats a number with thousands separators and two decimals.
func commas(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
