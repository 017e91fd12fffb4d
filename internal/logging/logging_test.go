package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"jungle-defense/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.LoggingConfig
		debug  bool
		enable zapcore.Level
	}{
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, true, zapcore.DebugLevel},
		{"json warn", config.LoggingConfig{Level: "warn", Format: "json"}, false, zapcore.WarnLevel},
		{"garbage level falls back to info", config.LoggingConfig{Level: "loud"}, false, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer log.Sync()
			core := log.Core()
			if got := core.Enabled(zapcore.DebugLevel); got != tt.debug {
				t.Errorf("debug enabled = %v, want %v", got, tt.debug)
			}
			if !core.Enabled(tt.enable) {
				t.Errorf("level %v not enabled", tt.enable)
			}
		})
	}
}
