package analyze

import "github.com/Alias1177/RateShift/models"

// Thresholds in percentage points between the forecast and the current rate
const (
	// EquityShiftDrop is how far the rate must be expected to fall before equities are favored
	EquityShiftDrop = 1.5
	// LowRiskRise is how far the rate must be expected to rise before staying in low-risk funds
	LowRiskRise = 1.0
)

// Recommend maps the current and forecast policy rate to a fund strategy.
// The drop rule is checked first; equality on either threshold is BALANCED.
func Recommend(current, forecast float64) models.Recommendation {
	switch {
	case forecast < current-EquityShiftDrop:
		return models.ShiftToEquity
	case forecast > current+LowRiskRise:
		return models.StayLowRisk
	default:
		return models.Balanced
	}
}
