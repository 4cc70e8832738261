package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
	assert.Equal(t, "https://weather.gc.ca", cfg.API.BaseURL)
	assert.Equal(t, "weather-app/1.0", cfg.API.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2, cfg.API.MaxRetries)
	assert.Equal(t, time.Second, cfg.API.RetryDelay)
	assert.Equal(t, 5, cfg.App.ForecastDays)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GC_WEATHER_API_MAXRETRIES", "4")
	t.Setenv("GC_WEATHER_API_RETRYDELAY", "250ms")
	t.Setenv("GC_WEATHER_SERVER_PORT", "9090")
	t.Setenv("GC_WEATHER_LOG_OUTPUT", "stderr")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.API.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.API.RetryDelay)
	assert.Equal(t, ":9090", cfg.GetServerAddr())
	assert.Equal(t, "stderr", cfg.Log.Output)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level}}
			assert.Equal(t, tt.want, cfg.logLevel())
		})
	}
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "error", Format: "json", Output: "stderr"}}
	logger := cfg.NewLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}
