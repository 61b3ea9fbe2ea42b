package osint

import (
	"bytes"
	"context"
	"net/url"
	"os/exec"
	"strings"

	"flightdeck/internal/errors"
	"flightdeck/internal/query"
)

// TrustedURLPrefix is the only URL prefix the scanner will touch. Targets
// are matched against the raw string, so scheme and host tricks that would
// survive parsing still fail the check.
const TrustedURLPrefix = "https://www.flightradar24.com/"

// DefaultTool is the scanner binary used when none is configured.
const DefaultTool = "waybackurls"

// ValidateTargetURL checks that raw is a well-formed https URL under
// TrustedURLPrefix and returns it unchanged. Anything else is an input error.
func ValidateTargetURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", errors.NewInvalidInput("url", "not a valid URL")
	}
	if u.Scheme != "https" {
		return "", errors.NewInvalidInput("url", "only https targets are allowed")
	}
	if !strings.HasPrefix(raw, TrustedURLPrefix) {
		return "", errors.NewInvalidInput("url", "target must start with "+TrustedURLPrefix)
	}
	return raw, nil
}

// Runner executes a local OSINT tool against validated targets.
type Runner struct {
	tool string
}

// New returns a runner for the given tool binary, falling back to
// DefaultTool when empty.
func New(tool string) *Runner {
	if tool == "" {
		tool = DefaultTool
	}
	return &Runner{tool: tool}
}

// Tool reports the binary this runner invokes.
func (r *Runner) Tool() string { return r.tool }

// Scan runs the tool with the target as its single argument and folds the
// outcome into a result. The target is re-validated here so the allow-list
// holds even for callers that skipped ValidateTargetURL. The argument is
// passed as its own argv element and never goes through a shell.
func (r *Runner) Scan(ctx context.Context, target string) query.Result[string] {
	validated, err := ValidateTargetURL(target)
	if err != nil {
		return query.Fail[string](query.ProcessError, "refusing target: %v", err)
	}

	cmd := exec.CommandContext(ctx, r.tool, validated)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return query.Fail[string](query.ProcessError, "%s", msg)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return query.Fail[string](query.ProcessError, "%s", msg)
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" {
		return query.Empty[string]()
	}
	return query.Ok([]string{out})
}
