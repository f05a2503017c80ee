// Package forecast projects the policy rate forward.
//
// OffsetForecaster is a placeholder: it shifts the current rate by a constant.
// A time-series model (ARIMA, Prophet and similar) plugs in through models.Forecaster.
package forecast

// DefaultOffset is the cut applied by the placeholder forecast, in percentage points
const DefaultOffset = 1.0

type OffsetForecaster struct {
	Offset float64
}

func NewOffsetForecaster(offset float64) OffsetForecaster {
	return OffsetForecaster{Offset: offset}
}

// Forecast returns current minus the configured offset
func (f OffsetForecaster) Forecast(current float64) float64 {
	return current - f.Offset
}
