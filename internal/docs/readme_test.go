package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdeck/internal/command"
)

type docCmd struct{ name, desc string }

func (c *docCmd) Name() string        { return c.name }
func (c *docCmd) Description() string { return c.desc }

func (c *docCmd) Run(ctx context.Context, inv *command.Invocation) error {
	return nil
}

func testRegistry() *command.Registry {
	reg := command.NewRegistry()
	reg.Register(&docCmd{name: "track", desc: "Get tracking links"})
	reg.Register(&docCmd{name: "flight", desc: "Look up flight status"})
	return reg
}

func TestRenderCommandSections(t *testing.T) {
	got := RenderCommandSections(testRegistry())

	assert.Equal(t, "* **`/flight`**\n  Look up flight status\n\n* **`/track`**\n  Get tracking links\n\n", got)
}

func TestBuildReadme(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "README.md.tmpl")
	out := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(tmpl, []byte("# Bot\n\n{{.CommandSections}}"), 0o644))

	require.NoError(t, BuildReadme(testRegistry(), tmpl, out))

	rendered, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "# Bot")
	assert.Contains(t, string(rendered), "* **`/flight`**")
	assert.Contains(t, string(rendered), "* **`/track`**")
}

func TestBuildReadmeMissingTemplate(t *testing.T) {
	err := BuildReadme(testRegistry(), filepath.Join(t.TempDir(), "nope.tmpl"), "README.md")
	assert.Error(t, err)
}
