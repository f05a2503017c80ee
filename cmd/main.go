package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/app"
	"github.com/Alias1177/RateShift/internal/chart"
	"github.com/Alias1177/RateShift/internal/config"
	"github.com/Alias1177/RateShift/internal/dashboard"
)

func main() {
	app.SetupLogging(os.Getenv("LOG_LEVEL"))

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Report failed")
	}
}

// run keeps the deferred cleanup out of log.Fatal's way
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	app.SetupLogging(cfg.LogLevel)

	a := app.New(cfg)
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout()*2)
	defer cancel()

	d := a.Builder.Build(ctx)
	if d.Rate.Err != nil {
		log.Warn().Err(d.Rate.Err).Msg("Live rate unavailable, using fallback")
	}

	if err := dashboard.RenderText(os.Stdout, d); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cfg.ChartOutput == "" {
		return nil
	}

	if err := chart.WriteFile(cfg.ChartOutput, d.History, chart.DefaultOptions()); err != nil {
		return fmt.Errorf("chart %s: %w", cfg.ChartOutput, err)
	}
	log.Info().Str("path", cfg.ChartOutput).Msg("Chart written")
	return nil
}
