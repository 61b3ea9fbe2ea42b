// cmd/build-readme/main.go
//
// Regenerates README.md from README.md.tmpl and the live command catalog.
// Run from the repository root between releases so the command table never
// drifts from the code.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"flightdeck/internal/catalog"
	"flightdeck/internal/config"
	"flightdeck/internal/docs"
	"flightdeck/internal/logger"
)

func main() {
	logger.Init("info", "")

	// Names and descriptions are all the README needs; a zero config builds
	// the same catalog without touching the environment.
	reg := catalog.Build(&config.Config{})

	if err := docs.BuildReadme(reg, "README.md.tmpl", "README.md"); err != nil {
		log.Error().Err(err).Msg("Failed to build README")
		os.Exit(1)
	}
	log.Info().Int("commands", reg.Len()).Msg("README.md updated")
}
