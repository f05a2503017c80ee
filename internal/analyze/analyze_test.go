package analyze

import (
	"testing"

	"github.com/Alias1177/RateShift/internal/forecast"
	"github.com/Alias1177/RateShift/models"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		forecast float64
		expected models.Recommendation
	}{
		{"Sharp expected cut", 10.0, 8.4, models.ShiftToEquity},
		{"Cut exactly at threshold", 10.0, 8.5, models.Balanced},
		{"Small cut", 10.0, 9.0, models.Balanced},
		{"Flat", 10.0, 10.0, models.Balanced},
		{"Rise exactly at threshold", 10.0, 11.0, models.Balanced},
		{"Sharp expected hike", 10.0, 11.01, models.StayLowRisk},
		{"Large hike", 8.5, 12.0, models.StayLowRisk},
		{"Collapse from high rate", 22.0, 12.0, models.ShiftToEquity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Recommend(tt.current, tt.forecast)
			if result != tt.expected {
				t.Errorf("Recommend(%v, %v) = %v, want %v", tt.current, tt.forecast, result, tt.expected)
			}
		})
	}
}

func TestRecommendRuleProperties(t *testing.T) {
	for current := 0.5; current <= 25; current += 0.25 {
		for delta := -4.0; delta <= 4.0; delta += 0.125 {
			fc := current + delta
			got := Recommend(current, fc)

			switch {
			case fc < current-EquityShiftDrop:
				if got != models.ShiftToEquity {
					t.Fatalf("Recommend(%v, %v) = %v, want %v", current, fc, got, models.ShiftToEquity)
				}
			case fc > current+LowRiskRise:
				if got != models.StayLowRisk {
					t.Fatalf("Recommend(%v, %v) = %v, want %v", current, fc, got, models.StayLowRisk)
				}
			default:
				if got != models.Balanced {
					t.Fatalf("Recommend(%v, %v) = %v, want %v", current, fc, got, models.Balanced)
				}
			}
		}
	}
}

func TestPlaceholderForecastIsBalanced(t *testing.T) {
	f := forecast.NewOffsetForecaster(forecast.DefaultOffset)

	// 9.75 live rate forecasts to 8.75, above the 8.25 cut threshold
	if got := Recommend(9.75, f.Forecast(9.75)); got != models.Balanced {
		t.Errorf("live rate 9.75 gave %v, want %v", got, models.Balanced)
	}
	if got := Recommend(8.5, f.Forecast(8.5)); got != models.Balanced {
		t.Errorf("fallback rate 8.5 gave %v, want %v", got, models.Balanced)
	}
}

func TestRecommendationText(t *testing.T) {
	for _, r := range []models.Recommendation{models.ShiftToEquity, models.StayLowRisk, models.Balanced} {
		if r.Text() == "" || r.Text() == string(r) {
			t.Errorf("%v has no display text", r)
		}
	}
}
