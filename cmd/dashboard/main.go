package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/app"
	"github.com/Alias1177/RateShift/internal/config"
	"github.com/Alias1177/RateShift/internal/dashboard"
)

func main() {
	app.SetupLogging(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	app.SetupLogging(cfg.LogLevel)

	a := app.New(cfg)
	defer a.Close()

	server := dashboard.NewServer(dashboard.DefaultServerConfig(cfg.HTTPAddr), a.Builder, a.Funds)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error().Err(err).Msg("Server failed")
		return
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown requested")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	log.Info().Msg("Server exited")
}
