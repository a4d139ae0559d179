// Package export renders prediction results for download: CSV, JSON and a
// plain-text report. Column order, field names and section banners are part
// of the external contract and must not change.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/launchlens/launchlens/analytics"
	"github.com/launchlens/launchlens/pkg/errors"
	"github.com/launchlens/launchlens/predictor"
)

// timestampLayout is used in every export format.
const timestampLayout = "2006-01-02 15:04:05"

// csvHeader is the fixed CSV column order.
var csvHeader = []string{
	"Timestamp",
	"Funding ($)",
	"Team Size",
	"Market Size ($)",
	"Monthly Revenue ($)",
	"Growth Rate (%)",
	"Success Score",
	"Prediction",
	"Confidence (%)",
	"Low Potential (%)",
	"Moderate Potential (%)",
	"High Potential (%)",
}

// CSV renders one prediction as a two-line CSV document (header + row).
func CSV(rec predictor.FeatureRecord, result predictor.PredictionResult, now time.Time) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	row := []string{
		now.Format(timestampLayout),
		num(rec.Funding),
		num(rec.TeamSize),
		num(rec.MarketSize),
		num(rec.Revenue),
		num(rec.GrowthRate),
		num(result.SuccessScore),
		result.Label.String(),
		num(result.Confidence),
		num(result.Probabilities.Low),
		num(result.Probabilities.Moderate),
		num(result.Probabilities.High),
	}

	if err := w.Write(csvHeader); err != nil {
		return "", errors.Wrap(err, "writing CSV header")
	}
	if err := w.Write(row); err != nil {
		return "", errors.Wrap(err, "writing CSV row")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.Wrap(err, "flushing CSV")
	}
	return b.String(), nil
}

// document mirrors the JSON export structure.
type document struct {
	Timestamp    string                   `json:"timestamp"`
	InputMetrics inputMetrics             `json:"input_metrics"`
	Prediction   prediction               `json:"prediction"`
	Insights     *analytics.InsightBundle `json:"insights,omitempty"`
}

type inputMetrics struct {
	Funding        float64 `json:"funding"`
	TeamSize       float64 `json:"team_size"`
	MarketSize     float64 `json:"market_size"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	GrowthRate     float64 `json:"growth_rate"`
}

type prediction struct {
	SuccessScore  float64                 `json:"success_score"`
	Label         predictor.Label         `json:"prediction_label"`
	Confidence    float64                 `json:"confidence"`
	Probabilities predictor.Probabilities `json:"probabilities"`
}

// JSON renders the record, result and optional insights with 2-space
// indentation.
func JSON(rec predictor.FeatureRecord, result predictor.PredictionResult, bundle *analytics.InsightBundle, now time.Time) (string, error) {
	doc := document{
		Timestamp: now.Format(timestampLayout),
		InputMetrics: inputMetrics{
			Funding:        rec.Funding,
			TeamSize:       rec.TeamSize,
			MarketSize:     rec.MarketSize,
			MonthlyRevenue: rec.Revenue,
			GrowthRate:     rec.GrowthRate,
		},
		Prediction: prediction{
			SuccessScore:  result.SuccessScore,
			Label:         result.Label,
			Confidence:    result.Confidence,
			Probabilities: result.Probabilities,
		},
		Insights: bundle,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshaling export document")
	}
	return string(out), nil
}

// FormatCurrency renders an amount with a B/M/K suffix.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1e9:
		return fmt.Sprintf("$%.2fB", amount/1e9)
	case amount >= 1e6:
		return fmt.Sprintf("$%.2fM", amount/1e6)
	case amount >= 1e3:
		return fmt.Sprintf("$%.2fK", amount/1e3)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
