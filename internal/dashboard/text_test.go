package dashboard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alias1177/RateShift/models"
)

func TestFormatRate(t *testing.T) {
	tests := map[float64]string{
		8.5:                "8.5",
		9.75:               "9.75",
		11:                 "11",
		10.1 - 1.0:         "9.1",
		13.333333333333334: "13.33",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatRate(in))
	}
}

func TestSummaryLive(t *testing.T) {
	d := models.Dashboard{Rate: liveResult(9.75), Forecast: 8.75, Recommendation: models.Balanced}

	out := Summary(d)

	assert.Contains(t, out, "Current SBP Interest Rate: 9.75% (as of 2026-06-16)")
	assert.Contains(t, out, "Forecasted Rate: 8.75%")
	assert.Contains(t, out, "Maintain a balanced fund strategy")
	assert.NotContains(t, out, "fallback")
}

func TestSummaryFallback(t *testing.T) {
	d := models.Dashboard{Rate: fallbackResult(), Forecast: 7.5, Recommendation: models.Balanced}

	out := Summary(d)

	assert.Contains(t, out, "8.5% (as of 2025-07-01)")
	assert.Contains(t, out, "using fallback data")
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	d := models.Dashboard{Rate: liveResult(15), Forecast: 13, Recommendation: models.ShiftToEquity}

	require.NoError(t, RenderText(&buf, d))

	out := buf.String()
	assert.Contains(t, out, PageTitle)
	assert.Contains(t, out, "Shift to high-risk equity funds")
	assert.Contains(t, out, FooterNote)
}
