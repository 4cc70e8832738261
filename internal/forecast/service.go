package forecast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gc-weather/internal/config"
	"gc-weather/internal/providers/gc"
)

// Executor performs the HTTP round-trip to the weather API.
type Executor interface {
	Execute(ctx context.Context, target string, maxRetries int) (any, error)
}

// Service produces text forecasts for a coordinate.
type Service interface {
	// GetForecast never fails: every outcome, including invalid input and API
	// errors, is described by the returned Result's Text.
	GetForecast(ctx context.Context, latitude, longitude any) Result
}

type forecastService struct {
	executor   Executor
	baseURL    string
	maxRetries int
	maxDays    int
	logger     *slog.Logger
}

// NewForecastService creates a forecast service backed by the GC weather API client
func NewForecastService(cfg *config.Config, logger *slog.Logger) Service {
	client := gc.NewClient(
		logger.With("component", "gc-client"),
		gc.WithUserAgent(cfg.API.UserAgent),
		gc.WithTimeout(cfg.API.Timeout),
		gc.WithRetryDelay(cfg.API.RetryDelay),
	)
	return NewForecastServiceWithExecutor(client, cfg, logger)
}

// NewForecastServiceWithExecutor creates a forecast service with a custom executor.
// This is useful for testing with mock executors
func NewForecastServiceWithExecutor(executor Executor, cfg *config.Config, logger *slog.Logger) Service {
	baseURL := cfg.API.BaseURL
	if baseURL == "" {
		baseURL = gc.BaseURL
	}
	maxDays := cfg.App.ForecastDays
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}

	return &forecastService{
		executor:   executor,
		baseURL:    baseURL,
		maxRetries: cfg.API.MaxRetries,
		maxDays:    maxDays,
		logger:     logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) GetForecast(ctx context.Context, latitude, longitude any) (result Result) {
	coords, err := ParseCoords(latitude, longitude)
	if err != nil {
		return invalidInput(err)
	}

	s.logger.Info("get_forecast called",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	defer func() {
		if r := recover(); r != nil {
			result = s.failure(fmt.Errorf("%v", r))
		}
	}()

	target, err := BuildForecastURL(s.baseURL, coords)
	if err != nil {
		return s.failure(err)
	}

	payload, err := s.executor.Execute(ctx, target, s.maxRetries)
	if err != nil {
		return s.failure(err)
	}

	locations, ok := payload.([]any)
	if !ok || len(locations) == 0 {
		s.logger.Error("invalid API response", "payload_type", jsonType(payload))
		return Result{Kind: KindNoData, Text: MsgUnableToFetch}
	}

	days, err := dailyEntries(locations)
	if err != nil {
		return s.failure(err)
	}

	if len(days) == 0 {
		s.logger.Warn("no daily forecast data found in response")
		return Result{Kind: KindNoData, Text: MsgNoLocationData}
	}

	text := FormatForecast(days, s.maxDays)
	if text == MsgNoForecastData {
		return Result{Kind: KindNoData, Text: text}
	}

	return Result{Kind: KindOK, Text: text}
}

func invalidInput(err error) Result {
	text := MsgNotNumeric
	switch {
	case errors.Is(err, ErrInvalidLatitude):
		text = MsgInvalidLatitude
	case errors.Is(err, ErrInvalidLongitude):
		text = MsgInvalidLongitude
	}
	return Result{Kind: KindInvalidInput, Text: text}
}

// failure maps a pipeline error onto the text contract.
func (s *forecastService) failure(err error) Result {
	var reqErr *gc.RequestError
	var keyErr *MissingKeyError

	switch {
	case errors.As(err, &reqErr):
		s.logger.Error("weather API error", "kind", reqErr.Kind.String(), "error", err)
		return Result{Kind: KindAPIError, Text: prefixAPIError + err.Error()}
	case errors.As(err, &keyErr):
		s.logger.Error("missing key while processing forecast data", "key", keyErr.Key)
		return Result{Kind: KindProcessingError, Text: prefixMissingKey + keyErr.Error()}
	default:
		s.logger.Error("unexpected error", "error", err)
		return Result{Kind: KindProcessingError, Text: prefixProcessingFail + err.Error()}
	}
}
