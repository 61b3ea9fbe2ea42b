package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeTpl(t *testing.T) {
	cases := []struct {
		name string
		ts   string
		tpl  string
		want string
	}{
		{name: "rfc3339 datetime", ts: "2026-03-01T10:30:00+00:00", tpl: "YYYY-MM-DD hh:mm", want: "2026-03-01 10:30"},
		{name: "no zone", ts: "2026-03-01T10:30:45", tpl: "hh:mm:ss", want: "10:30:45"},
		{name: "date only", ts: "2026-03-01", tpl: "DD/MM/YYYY", want: "01/03/2026"},
		{name: "two digit year after four", ts: "2026-03-01", tpl: "YYYY YY", want: "2026 26"},
		{name: "surrounding whitespace", ts: " 2026-03-01 ", tpl: "YYYY.MM.DD", want: "2026.03.01"},
		{name: "empty falls back", ts: "", tpl: "YYYY", want: "Unknown"},
		{name: "garbage falls back", ts: "soon", tpl: "YYYY", want: "Unknown"},
		{name: "epoch millis fall back", ts: "1699603200000", tpl: "YYYY", want: "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTimeTpl(tc.ts, tc.tpl, "Unknown"))
		})
	}
}

func TestParseWireTime(t *testing.T) {
	got, ok := ParseWireTime("2026-03-01T10:30:00+00:00")
	require.True(t, ok)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 10, got.Hour())

	_, ok = ParseWireTime("tomorrow-ish")
	assert.False(t, ok)

	_, ok = ParseWireTime("")
	assert.False(t, ok)
}
