// Package analytics turns a feature record and its prediction into
// qualitative judgments: per-dimension assessments, risk factors,
// strengths, runway, peer comparison and benchmark profiles. Everything
// here is a pure function over hand-authored business heuristics,
// independent of the classifier.
package analytics

// Status is a closed enumeration of the per-dimension assessment bands.
// Each band carries its fixed score and message, so there is no string
// matching anywhere downstream.
type Status int

const (
	StatusStrong Status = iota
	StatusAdequate
	StatusConcern
	StatusExcellent
	StatusGood
	StatusNeedsImprovement
	StatusHugeOpportunity
	StatusGoodOpportunity
	StatusLimited
	StatusGrowing
	StatusEarlyStage
	StatusExceptional
	StatusModerate
	StatusSlow
)

var statusNames = map[Status]string{
	StatusStrong:           "Strong",
	StatusAdequate:         "Adequate",
	StatusConcern:          "Concern",
	StatusExcellent:        "Excellent",
	StatusGood:             "Good",
	StatusNeedsImprovement: "Needs Improvement",
	StatusHugeOpportunity:  "Huge Opportunity",
	StatusGoodOpportunity:  "Good Opportunity",
	StatusLimited:          "Limited",
	StatusGrowing:          "Growing",
	StatusEarlyStage:       "Early Stage",
	StatusExceptional:      "Exceptional",
	StatusModerate:         "Moderate",
	StatusSlow:             "Slow",
}

// String returns the display name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Severity classifies how serious a risk factor is.
type Severity int

const (
	SeverityMedium Severity = iota
	SeverityHigh
	SeverityCritical
)

// String returns the display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityMedium:
		return "Medium"
	case SeverityHigh:
		return "High"
	case SeverityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// Color returns the display color associated with the severity.
func (s Severity) Color() string {
	switch s {
	case SeverityMedium:
		return "#ffc107"
	case SeverityHigh:
		return "#fd7e14"
	case SeverityCritical:
		return "#dc3545"
	default:
		return "#6c757d"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ScoreColor returns the display color for a 0-100 score.
func ScoreColor(score float64) string {
	switch {
	case score >= 70:
		return "#28a745"
	case score >= 40:
		return "#ffc107"
	default:
		return "#dc3545"
	}
}
