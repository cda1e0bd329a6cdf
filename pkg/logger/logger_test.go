package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-blockingqueue/pkg/settings"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"empty_defaults_to_info", "", zapcore.InfoLevel, false},
		{"debug", "debug", zapcore.DebugLevel, false},
		{"upper_case", "WARN", zapcore.WarnLevel, false},
		{"invalid", "chatty", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(settings.Logger{LogLevel: "chatty"})
	assert.Error(t, err)
}

func TestNew_WritesRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.log")

	log, err := New(settings.Logger{
		LogLevel:    "debug",
		FileLogName: path,
		MaxSize:     1,
		MaxBackups:  1,
		MaxAge:      1,
	})
	require.NoError(t, err)

	// lumberjack writes through on every entry, so no Sync is needed.
	log.Debug("queue interrupt flag changed", zap.Bool("interrupted", true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(raw))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "queue interrupt flag changed", entry["msg"])
	assert.Equal(t, true, entry["interrupted"])
	assert.Contains(t, entry, "time")
}
