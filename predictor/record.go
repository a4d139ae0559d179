// Package predictor exposes the startup success prediction service: a
// standard scaler and a random forest trained once on the synthetic corpus,
// wrapped in a deterministic feature-to-score pipeline.
package predictor

import "github.com/launchlens/launchlens/dataset"

// FeatureRecord is the immutable five-metric input to every core operation.
// Callers validate ranges before constructing one; the core does not
// re-validate.
type FeatureRecord struct {
	Funding    float64 `json:"funding"`
	TeamSize   float64 `json:"team_size"`
	MarketSize float64 `json:"market_size"`
	Revenue    float64 `json:"revenue"`
	GrowthRate float64 `json:"growth_rate"`
}

// Vector returns the features in the fixed model order
// [funding, team_size, market_size, revenue, growth_rate].
func (r FeatureRecord) Vector() []float64 {
	return []float64{r.Funding, r.TeamSize, r.MarketSize, r.Revenue, r.GrowthRate}
}

// FeatureNames are the display names of the five features, in model order.
var FeatureNames = [dataset.NumFeatures]string{
	"Funding",
	"Team Size",
	"Market Size",
	"Monthly Revenue",
	"Growth Rate",
}

// Label is a closed enumeration of the three prediction outcomes. The
// integer values match the classifier's class indices.
type Label int

const (
	// LowPotential is class 0.
	LowPotential Label = iota
	// ModeratePotential is class 1.
	ModeratePotential
	// HighPotential is class 2.
	HighPotential
)

// String returns the display name of the label.
func (l Label) String() string {
	switch l {
	case LowPotential:
		return "Low Potential"
	case ModeratePotential:
		return "Moderate Potential"
	case HighPotential:
		return "High Potential"
	default:
		return "Unknown"
	}
}

// Color returns the display color associated with the label.
func (l Label) Color() string {
	switch l {
	case HighPotential:
		return "#28a745"
	case ModeratePotential:
		return "#ffc107"
	case LowPotential:
		return "#dc3545"
	default:
		return "#6c757d"
	}
}

// MarshalText implements encoding.TextMarshaler so labels serialize as
// their display names.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Probabilities holds the per-tier class probabilities as percentages.
// The three values sum to 100 up to rounding.
type Probabilities struct {
	Low      float64 `json:"low"`
	Moderate float64 `json:"moderate"`
	High     float64 `json:"high"`
}

// PredictionResult is the outcome of one prediction call. All values are
// rounded to two decimals for external consumption.
type PredictionResult struct {
	// SuccessScore is in [0,100]: the probability-weighted blend of the
	// tier midpoints 0, 50 and 100.
	SuccessScore float64 `json:"success_score"`

	// Label is the argmax class.
	Label Label `json:"prediction_label"`

	// Confidence is 100 times the maximum class probability.
	Confidence float64 `json:"confidence"`

	Probabilities Probabilities `json:"probabilities"`
}
