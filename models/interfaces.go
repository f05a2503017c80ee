package models

import "context"

// RateSource retrieves the live policy rate. Implementations return an error on any failure.
type RateSource interface {
	PolicyRate(ctx context.Context) (RateSnapshot, error)
}

type Forecaster interface {
	Forecast(current float64) float64
}

type FundDataSource interface {
	Load(ctx context.Context) ([]FundRecord, error)
}

// SnapshotCache keeps the last live snapshot for a bounded time
type SnapshotCache interface {
	Get(ctx context.Context) (RateSnapshot, bool)
	Set(ctx context.Context, snapshot RateSnapshot) error
}
