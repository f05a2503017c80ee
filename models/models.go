package models

import (
	"time"
)

// DateLayout is the calendar-date format used for snapshot dates.
const DateLayout = "2006-01-02"

// RateSnapshot is the policy rate as observed on a given day
type RateSnapshot struct {
	Rate float64   `json:"rate"` // percent
	AsOf time.Time `json:"as_of"`
}

// AsOfDate returns the snapshot date formatted as YYYY-MM-DD
func (s RateSnapshot) AsOfDate() string {
	return s.AsOf.Format(DateLayout)
}

// FundRecord is one quarter of historical rate and fund performance
type FundRecord struct {
	Date          time.Time `json:"date"`
	StockReturn   float64   `json:"stock_return"`
	LowRiskReturn float64   `json:"low_risk_return"`
	InterestRate  float64   `json:"interest_rate"`
}

// Recommendation is the investment strategy derived from current and forecast rates
type Recommendation string

const (
	ShiftToEquity Recommendation = "SHIFT_TO_EQUITY"
	StayLowRisk   Recommendation = "STAY_LOW_RISK"
	Balanced      Recommendation = "BALANCED"
)

// Text returns the human readable advice for the recommendation
func (r Recommendation) Text() string {
	switch r {
	case ShiftToEquity:
		return "Shift to high-risk equity funds (stocks, equity mutual funds)"
	case StayLowRisk:
		return "Stay in low-risk funds (money market, income funds)"
	case Balanced:
		return "Maintain a balanced fund strategy"
	}
	return string(r)
}

// Freshness tells where a displayed rate snapshot came from
type Freshness string

const (
	FreshnessLive     Freshness = "LIVE"
	FreshnessCached   Freshness = "CACHED"
	FreshnessFallback Freshness = "FALLBACK"
)

// RateResult is the outcome of a rate fetch. Err is set only for fallback results.
type RateResult struct {
	Snapshot  RateSnapshot `json:"snapshot"`
	Freshness Freshness    `json:"freshness"`
	Err       error        `json:"-"`
}

// IsFallback reports whether the snapshot is the fixed fallback value
func (r RateResult) IsFallback() bool {
	return r.Freshness == FreshnessFallback
}

// Dashboard is everything a presenter needs for one render
type Dashboard struct {
	Rate           RateResult     `json:"rate"`
	Forecast       float64        `json:"forecast"`
	Recommendation Recommendation `json:"recommendation"`
	History        []FundRecord   `json:"history"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
