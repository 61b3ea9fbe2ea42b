// Package catalog assembles the bot's command set. Registration is explicit
// so the whole catalog is visible in one place and checked at compile time.
package catalog

import (
	"flightdeck/internal/aviationstack"
	"flightdeck/internal/command"
	"flightdeck/internal/command/core"
	"flightdeck/internal/command/lookup"
	"flightdeck/internal/command/recon"
	"flightdeck/internal/command/track"
	"flightdeck/internal/config"
	"flightdeck/internal/osint"
)

// Build wires every command with its backend and returns the filled
// registry. The bot and the deploy tool share this construction path, so
// what runs is exactly what gets published.
func Build(cfg *config.Config) *command.Registry {
	api := aviationstack.New(cfg.AviationStackURL, cfg.AviationStackKey, cfg.QueryTimeout)
	runner := osint.New(cfg.OSINTTool)

	reg := command.NewRegistry()
	logged := command.WithLogging()

	reg.Register(command.Apply(&lookup.FlightCommand{API: api}, logged))
	reg.Register(command.Apply(&track.TrackCommand{}, logged))
	reg.Register(command.Apply(&recon.ReconCommand{Runner: runner}, logged))
	reg.Register(command.Apply(&core.HelpCommand{Registry: reg}, logged))
	reg.Register(command.Apply(&core.PingCommand{}, logged))
	reg.Register(command.Apply(&core.AboutCommand{}, logged))

	return reg
}
