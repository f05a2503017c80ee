package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/app"
	"github.com/Alias1177/RateShift/internal/chart"
	"github.com/Alias1177/RateShift/internal/config"
	"github.com/Alias1177/RateShift/internal/telegram"
)

func main() {
	app.SetupLogging(os.Getenv("LOG_LEVEL"))

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Broadcast failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	app.SetupLogging(cfg.LogLevel)

	bot, err := telegram.NewBot(cfg.TelegramToken)
	if err != nil {
		return err
	}

	a := app.New(cfg)
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout()*2)
	defer cancel()

	d := a.Builder.Build(ctx)

	notifier := telegram.NewNotifier(bot, cfg.TelegramChatID, chart.DefaultOptions())
	if err := notifier.Send(d); err != nil {
		return fmt.Errorf("chat %d: %w", cfg.TelegramChatID, err)
	}

	log.Info().
		Str("freshness", string(d.Rate.Freshness)).
		Str("recommendation", string(d.Recommendation)).
		Msg("Broadcast completed")
	return nil
}
