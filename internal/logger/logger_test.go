package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "warn"}, &buf)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "logger_test.go")
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", DisabledTags: []string{"History"}}, &buf)

	DebugTagf("history", "group opened")
	DebugTagf("cursor", "moved")

	out := buf.String()
	assert.NotContains(t, out, "group opened")
	assert.Contains(t, out, "moved")
	assert.Contains(t, out, "tag=cursor")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", EnabledTags: []string{"input"}}, &buf)

	Debugf("untagged")
	DebugTagf("input", "tagged")

	out := buf.String()
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "tagged")
}

func TestPackageFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &buf)

	Errorf("from logger package")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"WARNING", slog.LevelWarn, true},
		{"err", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
