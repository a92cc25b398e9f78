// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/lvmat/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.Level
	}{
		{"debug", logging.LevelDebug},
		{"", logging.LevelInfo},
		{"INFO", logging.LevelInfo},
		{" warning ", logging.LevelWarn},
		{"error", logging.LevelError},
	}
	for _, tc := range tests {
		got, err := logging.ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}
	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
	require.Equal(t, "UNKNOWN", logging.Level(42).String())
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Contains(t, buf.String(), "k=1")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Output: &buf})
	log.Debug("materialize", "rows", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec))
	require.Equal(t, "materialize", rec["msg"])
	require.Equal(t, float64(2), rec["rows"])
}

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	logging.New(logging.Config{Quiet: true, Output: &buf}).Error("x")
	require.Zero(t, buf.Len())
}
