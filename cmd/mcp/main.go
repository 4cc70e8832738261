package main

import (
	"log"
	"log/slog"
	"os"

	"gc-weather/internal/config"
	"gc-weather/internal/forecast"
	"gc-weather/internal/mcpserver"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// stdout carries the protocol
	cfg.Log.Output = "stderr"
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	s := mcpserver.New(version, forecast.NewForecastService(cfg, logger), logger)

	logger.Info("starting weather MCP server", "version", version)
	if err := mcpserver.ServeStdio(s); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
