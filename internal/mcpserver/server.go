package mcpserver

import (
	"context"
	"log/slog"

	"gc-weather/internal/forecast"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName      = "weather"
	ToolGetForecast = "get_forecast"
)

type toolHandler struct {
	forecastService forecast.Service
	logger          *slog.Logger
}

// New builds an MCP server exposing the forecast tool.
func New(version string, forecastService forecast.Service, logger *slog.Logger) *server.MCPServer {
	h := &toolHandler{
		forecastService: forecastService,
		logger:          logger.With("component", "mcp-server"),
	}

	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(getForecastTool(), h.handleGetForecast)

	return s
}

func getForecastTool() mcp.Tool {
	return mcp.NewTool(ToolGetForecast,
		mcp.WithDescription("Get weather forecast for a location. Returns up to five daytime periods from the Government of Canada weather service."),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude of the location"),
			mcp.Min(-90),
			mcp.Max(90),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude of the location"),
			mcp.Min(-180),
			mcp.Max(180),
		),
	)
}

// handleGetForecast always answers with text content; failures are described, not raised.
func (h *toolHandler) handleGetForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	h.logger.Debug("tool called", "tool", request.Params.Name, "arguments", args)

	result := h.forecastService.GetForecast(ctx, args["latitude"], args["longitude"])
	if !result.OK() {
		h.logger.Info("forecast tool returned without data",
			"kind", string(result.Kind),
			"text", result.Text,
		)
	}

	return mcp.NewToolResultText(result.Text), nil
}

// ServeStdio runs the server over stdin/stdout until stdin closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
