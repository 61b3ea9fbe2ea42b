// Package config reads the process-wide configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, falling back to system environment variables")
	}
}

// Config is everything the bot and the deploy tool read at startup.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	DiscordAppID string `env:"DISCORD_APP_ID,required"`

	// GuildID scopes command deployment. Only guild-scoped deploys need it,
	// and the deploy tool enforces that itself.
	GuildID string `env:"DISCORD_GUILD_ID"`

	AviationStackKey string        `env:"AVIATIONSTACK_KEY,required"`
	AviationStackURL string        `env:"AVIATIONSTACK_URL" envDefault:"https://api.aviationstack.com/v1"`
	QueryTimeout     time.Duration `env:"QUERY_TIMEOUT" envDefault:"10s"`

	OSINTTool string `env:"OSINT_TOOL" envDefault:"waybackurls"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// New parses the environment into a Config. Missing required variables are
// aggregated by env.Parse, so the returned error names every missing one.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
