package analytics

import (
	"math"

	"github.com/launchlens/launchlens/predictor"
)

// Burn rate model constants.
const (
	// CostPerEmployee is the estimated monthly cost per team member.
	CostPerEmployee = 5000
	// OperationalOverhead is the multiplier covering non-payroll costs.
	OperationalOverhead = 1.2
)

// RunwayStatus is a closed enumeration of the runway bands.
type RunwayStatus int

const (
	RunwayExcellent RunwayStatus = iota
	RunwayHealthy
	RunwayAdequate
	RunwayConcerning
	RunwayCritical
)

// String returns the display name of the runway status.
func (s RunwayStatus) String() string {
	switch s {
	case RunwayExcellent:
		return "Excellent"
	case RunwayHealthy:
		return "Healthy"
	case RunwayAdequate:
		return "Adequate"
	case RunwayConcerning:
		return "Concerning"
	case RunwayCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s RunwayStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Runway is the burn-rate analysis of one record. When the business is cash
// flow positive, Indefinite is true and Months is meaningless.
type Runway struct {
	Months      float64      `json:"runway_months"`
	Indefinite  bool         `json:"indefinite"`
	Status      RunwayStatus `json:"status"`
	MonthlyBurn float64      `json:"monthly_burn"`
	MonthlyNet  float64      `json:"monthly_net"`
}

// CalculateRunway estimates months until funds run out at the current net
// burn. Months is rounded to one decimal.
func CalculateRunway(rec predictor.FeatureRecord) Runway {
	monthlyBurn := rec.TeamSize * CostPerEmployee * OperationalOverhead
	monthlyNet := rec.Revenue - monthlyBurn

	if monthlyNet >= 0 {
		return Runway{
			Indefinite:  true,
			Status:      RunwayExcellent,
			MonthlyBurn: monthlyBurn,
			MonthlyNet:  monthlyNet,
		}
	}

	months := rec.Funding / math.Abs(monthlyNet)

	var status RunwayStatus
	switch {
	case months > 18:
		status = RunwayHealthy
	case months > 12:
		status = RunwayAdequate
	case months > 6:
		status = RunwayConcerning
	default:
		status = RunwayCritical
	}

	return Runway{
		Months:      math.Round(months*10) / 10,
		Status:      status,
		MonthlyBurn: monthlyBurn,
		MonthlyNet:  monthlyNet,
	}
}
