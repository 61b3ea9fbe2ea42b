package osint

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdeck/internal/errors"
	"flightdeck/internal/query"
)

func TestValidateTargetURL(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "flight page", raw: "https://www.flightradar24.com/data/flights/ba234"},
		{name: "site root", raw: "https://www.flightradar24.com/"},
		{name: "plain http", raw: "http://www.flightradar24.com/data/flights/ba234", wantErr: true},
		{name: "wrong host", raw: "https://www.flightaware.com/live/flight/BA234", wantErr: true},
		{name: "prefix embedded in path", raw: "https://evil.example/https://www.flightradar24.com/", wantErr: true},
		{name: "userinfo trick", raw: "https://www.flightradar24.com@evil.example/x", wantErr: true},
		{name: "missing trailing path", raw: "https://www.flightradar24.com", wantErr: true},
		{name: "control character", raw: "https://www.flightradar24.com/\x7f", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateTargetURL(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, got)
		})
	}
}

func TestNewDefaultsTool(t *testing.T) {
	assert.Equal(t, DefaultTool, New("").Tool())
	assert.Equal(t, "echo", New("echo").Tool())
}

func TestScanSuccess(t *testing.T) {
	r := New("echo")
	target := TrustedURLPrefix + "data/flights/ba234"

	res := r.Scan(context.Background(), target)

	require.True(t, res.OK())
	require.Len(t, res.Records, 1)
	assert.Equal(t, target, res.Records[0])
}

func TestScanEmptyOutput(t *testing.T) {
	r := New("true")

	res := r.Scan(context.Background(), TrustedURLPrefix+"data/flights/ba234")

	assert.True(t, res.IsEmpty())
}

func TestScanNonZeroExit(t *testing.T) {
	r := New("false")

	res := r.Scan(context.Background(), TrustedURLPrefix+"data/flights/ba234")

	require.True(t, res.Failed())
	assert.Equal(t, query.ProcessError, res.Failure.Kind)
	assert.Contains(t, res.Failure.Message, "exit status")
}

func TestScanStderrIsFailure(t *testing.T) {
	// Exit code zero but noise on stderr still counts as a failed scan.
	tool := writeScript(t, "#!/bin/sh\necho some output\necho rate limit warning >&2\nexit 0\n")
	r := New(tool)

	res := r.Scan(context.Background(), TrustedURLPrefix+"data/flights/ba234")

	require.True(t, res.Failed())
	assert.Equal(t, query.ProcessError, res.Failure.Kind)
	assert.Contains(t, res.Failure.Message, "rate limit warning")
}

func TestScanMissingBinary(t *testing.T) {
	r := New("flightdeck-no-such-tool")

	res := r.Scan(context.Background(), TrustedURLPrefix+"data/flights/ba234")

	require.True(t, res.Failed())
	assert.Equal(t, query.ProcessError, res.Failure.Kind)
}

func TestScanRefusesUntrustedTarget(t *testing.T) {
	// The runner re-checks the allow-list itself; the tool must never start.
	r := New("flightdeck-no-such-tool")

	res := r.Scan(context.Background(), "https://evil.example/")

	require.True(t, res.Failed())
	assert.Equal(t, query.ProcessError, res.Failure.Kind)
	assert.Contains(t, res.Failure.Message, "refusing target")
}

func TestScanHonorsContext(t *testing.T) {
	tool := writeScript(t, "#!/bin/sh\nsleep 10\n")
	r := New(tool)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	res := r.Scan(ctx, TrustedURLPrefix+"data/flights/ba234")

	require.True(t, res.Failed())
	assert.Equal(t, query.ProcessError, res.Failure.Kind)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o755))
	return path
}
