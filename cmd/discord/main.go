// cmd/discord/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"flightdeck/internal/catalog"
	"flightdeck/internal/config"
	"flightdeck/internal/discord"
	"flightdeck/internal/logger"
	v "flightdeck/internal/version"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Init("info", "")
		log.Fatal().Err(err).Msg("Configuration error")
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	log.Info().Msgf("Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := catalog.Build(cfg)

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, reg); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Msgf("Received signal %s, shutting down...", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	}

	log.Info().Msg("Discord bot exited cleanly")
}
