package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var required = []string{"DISCORD_TOKEN", "DISCORD_APP_ID", "AVIATIONSTACK_KEY"}

var optional = []string{
	"DISCORD_GUILD_ID", "AVIATIONSTACK_URL", "QUERY_TIMEOUT",
	"OSINT_TOOL", "LOG_LEVEL", "LOG_FILE",
}

// unsetenv clears a variable for the duration of the test. t.Setenv first so
// the original value comes back afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNewMissingRequiredVarsAreAllReported(t *testing.T) {
	for _, k := range required {
		unsetenv(t, k)
	}

	_, err := New()

	require.Error(t, err)
	for _, k := range required {
		assert.Contains(t, err.Error(), k, "error must name every missing variable")
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	for _, k := range required {
		t.Setenv(k, "x")
	}
	for _, k := range optional {
		unsetenv(t, k)
	}

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "https://api.aviationstack.com/v1", cfg.AviationStackURL)
	assert.Equal(t, 10*time.Second, cfg.QueryTimeout)
	assert.Equal(t, "waybackurls", cfg.OSINTTool)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.GuildID)
	assert.Empty(t, cfg.LogFile)
}

func TestNewReadsValues(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
	t.Setenv("AVIATIONSTACK_KEY", "key")
	t.Setenv("DISCORD_GUILD_ID", "guild")
	t.Setenv("QUERY_TIMEOUT", "3s")
	t.Setenv("OSINT_TOOL", "gau")

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, "app", cfg.DiscordAppID)
	assert.Equal(t, "key", cfg.AviationStackKey)
	assert.Equal(t, "guild", cfg.GuildID)
	assert.Equal(t, 3*time.Second, cfg.QueryTimeout)
	assert.Equal(t, "gau", cfg.OSINTTool)
}
