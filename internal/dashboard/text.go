package dashboard

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Alias1177/RateShift/models"
)

const (
	PageTitle  = "Pakistan Interest Rate & Mutual Fund Strategy Tool"
	FooterNote = "Interest rate data is fetched from SBP.gov.pk. Forecasting model is placeholder and can be replaced with Prophet, ARIMA, etc."
)

// FormatRate prints a percentage without trailing zeros, e.g. 8.5 or 9.75
func FormatRate(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func CurrentLine(d models.Dashboard) string {
	return fmt.Sprintf("Current SBP Interest Rate: %s%% (as of %s)",
		FormatRate(d.Rate.Snapshot.Rate), d.Rate.Snapshot.AsOfDate())
}

func ForecastLine(d models.Dashboard) string {
	return fmt.Sprintf("Forecasted Rate: %s%%", FormatRate(d.Forecast))
}

// FreshnessNote is empty for live data
func FreshnessNote(d models.Dashboard) string {
	switch d.Rate.Freshness {
	case models.FreshnessFallback:
		return "Live rate unavailable, using fallback data."
	case models.FreshnessCached:
		return "Showing cached rate."
	}
	return ""
}

// Summary is the plain-text rendering of the dashboard
func Summary(d models.Dashboard) string {
	var sb strings.Builder
	sb.WriteString(CurrentLine(d))
	sb.WriteString("\n")
	sb.WriteString(ForecastLine(d))
	sb.WriteString("\n\nInvestment Strategy Recommendation:\n")
	sb.WriteString(d.Recommendation.Text())
	sb.WriteString("\n")
	if note := FreshnessNote(d); note != "" {
		sb.WriteString("\n")
		sb.WriteString(note)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderText writes the full console report, title and footer included
func RenderText(w io.Writer, d models.Dashboard) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		PageTitle, strings.Repeat("=", len(PageTitle)), Summary(d), FooterNote)
	return err
}
