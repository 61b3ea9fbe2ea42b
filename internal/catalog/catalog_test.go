package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdeck/internal/command"
	"flightdeck/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AviationStackURL: "https://api.aviationstack.example/v1",
		AviationStackKey: "k",
		QueryTimeout:     time.Second,
		OSINTTool:        "waybackurls",
	}
}

func TestBuildRegistersAllCommands(t *testing.T) {
	reg := Build(testConfig())

	require.Equal(t, 6, reg.Len())
	for _, name := range []string{"flight", "track", "recon", "help", "ping", "about"} {
		assert.NotNil(t, reg.Get(name), "command %s", name)
	}
}

func TestBuildEveryCommandIsDeployable(t *testing.T) {
	reg := Build(testConfig())

	defs := reg.Deployable()

	require.Len(t, defs, reg.Len())
	for _, def := range defs {
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
	}
}

func TestBuildWrapsCommandsWithLogging(t *testing.T) {
	reg := Build(testConfig())

	c := reg.Get("flight")
	require.NotNil(t, c)
	_, wrapped := c.(command.Unwrappable)
	assert.True(t, wrapped, "catalog commands carry the logging middleware")
	assert.NotSame(t, c, command.Root(c))
}
