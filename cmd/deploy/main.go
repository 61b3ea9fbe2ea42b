// cmd/deploy/main.go
//
// Publishes the command catalog to Discord. Run with no arguments to deploy
// to the guild from DISCORD_GUILD_ID, or with -g/--global for the global
// catalog. Exits 0 on success, 1 on any load or publish failure.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"flightdeck/internal/catalog"
	"flightdeck/internal/config"
	"flightdeck/internal/deploy"
	"flightdeck/internal/logger"
)

func main() {
	var global bool
	flag.BoolVar(&global, "g", false, "publish to the global catalog instead of a guild")
	flag.BoolVar(&global, "global", false, "publish to the global catalog instead of a guild")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		logger.Init("info", "")
		log.Error().Err(err).Msg("Configuration error")
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFile)

	target := deploy.Target{}
	if !global {
		if cfg.GuildID == "" {
			log.Error().Msg("DISCORD_GUILD_ID is not set; set it or pass --global")
			os.Exit(1)
		}
		target.GuildID = cfg.GuildID
	}

	session, err := deploy.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Discord session")
		os.Exit(1)
	}

	d := deploy.New(session, cfg.DiscordAppID)
	if err := d.Run(catalog.Build(cfg), target); err != nil {
		log.Error().Err(err).Msg("Deploy failed")
		os.Exit(1)
	}
}
