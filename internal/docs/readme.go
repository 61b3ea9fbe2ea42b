// Package docs renders repository documentation from the live command
// catalog, so the README never drifts from the code.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"flightdeck/internal/command"
)

// RenderCommandSections renders the command bullet list that goes into the
// README template, sorted by command name.
func RenderCommandSections(reg *command.Registry) string {
	var buf bytes.Buffer
	for _, c := range reg.All() {
		fmt.Fprintf(&buf, "* **`/%s`**\n  %s\n\n", c.Name(), c.Description())
	}
	return buf.String()
}

// BuildReadme executes the template at tmplPath with the rendered command
// sections and writes the result to outPath.
func BuildReadme(reg *command.Registry, tmplPath, outPath string) error {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		CommandSections string
	}{
		CommandSections: RenderCommandSections(reg),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	if err := os.WriteFile(outPath, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}
