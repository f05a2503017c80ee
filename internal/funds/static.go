package funds

import (
	"context"
	"time"

	"github.com/Alias1177/RateShift/models"
)

// Quarterly history of the policy rate against stock and low-risk fund returns, in percent.
// Sample data: a live feed can replace StaticSource through models.FundDataSource.
var (
	stockReturns = []float64{10, 8, -12, -6, 2, 5, 6, 12, 18, 25, 30, 28,
		20, 18, 15, 13, 12, 10, 9, 10, 11, 12, 14, 16}
	lowRiskReturns = []float64{12, 11, 9, 7, 6.5, 7.0, 7.5, 8.0, 8.5, 9.0, 9.5, 10,
		9.5, 9.0, 8.5, 8.0, 7.5, 7.0, 6.5, 6.0, 6.0, 6.2, 6.5, 7.0}
	interestRates = []float64{13.25, 12.5, 9.0, 7.0, 7.0, 7.25, 8.0, 9.5, 10.75, 13.75, 15.0, 17.0,
		17.0, 16.0, 15.25, 14.0, 13.5, 13.0, 12.5, 12.0, 11.0, 10.0, 9.0, 8.5}
)

// SeriesStart is the first quarter of the history
var SeriesStart = time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC)

// StaticSource serves the built-in history
type StaticSource struct{}

func NewStaticSource() StaticSource {
	return StaticSource{}
}

// Load always succeeds and returns a fresh copy of the 24 quarterly records
func (StaticSource) Load(_ context.Context) ([]models.FundRecord, error) {
	records := make([]models.FundRecord, len(interestRates))
	for i := range records {
		records[i] = models.FundRecord{
			Date:          SeriesStart.AddDate(0, 3*i, 0),
			StockReturn:   stockReturns[i],
			LowRiskReturn: lowRiskReturns[i],
			InterestRate:  interestRates[i],
		}
	}
	return records, nil
}
