package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// preserveDefaultLogger restores the process-wide logger after a test that
// calls Setup.
func preserveDefaultLogger(t *testing.T) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Format
		wantErr bool
	}{
		{name: "text", value: "text", want: FormatText},
		{name: "json", value: "json", want: FormatJSON},
		{name: "case and spacing ignored", value: " JSON ", want: FormatJSON},
		{name: "unknown", value: "xml", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", value: "debug", want: slog.LevelDebug},
		{name: "info", value: "info", want: slog.LevelInfo},
		{name: "warn", value: "warn", want: slog.LevelWarn},
		{name: "error", value: "ERROR", want: slog.LevelError},
		{name: "with offset", value: "warn+2", want: slog.LevelWarn + 2},
		{name: "unknown", value: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupJSONFormat(t *testing.T) {
	preserveDefaultLogger(t)
	var buf bytes.Buffer

	Setup(&buf, slog.LevelInfo, FormatJSON)
	slog.Info("exchange done", "path1", "/a", "path2", "/b")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "exchange done", record["msg"])
	assert.Equal(t, "/a", record["path1"])
	assert.Equal(t, "/b", record["path2"])
}

func TestSetupLevelFilter(t *testing.T) {
	preserveDefaultLogger(t)
	var buf bytes.Buffer

	Setup(&buf, slog.LevelWarn, FormatText)
	slog.Info("quiet")
	slog.Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestSetupLibraryDefaultLevel(t *testing.T) {
	preserveDefaultLogger(t)
	t.Setenv(DebugEnv, "")

	SetupLibrary()

	ctx := context.Background()
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelDebug))
	assert.False(t, slog.Default().Enabled(ctx, slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(ctx, slog.LevelError))
}

func TestSetupLibraryDebugEnv(t *testing.T) {
	preserveDefaultLogger(t)
	t.Setenv(DebugEnv, "1")

	SetupLibrary()

	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}

func TestIsTruthy(t *testing.T) {
	for _, value := range []string{"1", "true", "YES", " True "} {
		assert.True(t, isTruthy(value), "value %q", value)
	}
	for _, value := range []string{"", "0", "false", "off", "enable"} {
		assert.False(t, isTruthy(value), "value %q", value)
	}
}

func TestNewRunID(t *testing.T) {
	first := NewRunID()
	second := NewRunID()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}
