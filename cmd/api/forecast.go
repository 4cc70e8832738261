package main

import (
	"net/http"
	"strconv"

	"gc-weather/internal/forecast"

	"github.com/gin-gonic/gin"
)

// ForecastResponse is the JSON body of the forecast endpoint
type ForecastResponse struct {
	Forecast string `json:"forecast" example:"2023-01-01: Sunny"`
	Kind     string `json:"kind" example:"ok"`
	Timezone string `json:"timezone,omitempty" example:"America/Toronto"`
}

// handleGetForecast godoc
// @Summary Get daily forecast
// @Description Retrieve up to five daytime forecast periods from the Government of Canada weather service for a latitude and longitude
// @Tags forecast
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(45.4215)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-75.6972)
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ForecastResponse
// @Failure 500 {object} ForecastResponse
// @Failure 502 {object} ForecastResponse
// @Router /forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	latitude := queryNumber(c, "latitude")
	longitude := queryNumber(c, "longitude")

	result := app.forecastService.GetForecast(c.Request.Context(), latitude, longitude)

	resp := ForecastResponse{
		Forecast: result.Text,
		Kind:     string(result.Kind),
	}

	if result.OK() {
		if coords, err := forecast.ParseCoords(latitude, longitude); err == nil {
			tz, err := app.timezoneService.GetTimezone(coords)
			if err != nil {
				app.logger.Warn("failed to determine timezone",
					"latitude", coords.Latitude,
					"longitude", coords.Longitude,
					"error", err,
				)
			}
			resp.Timezone = tz
		}
	}

	c.JSON(statusFor(result.Kind), resp)
}

// queryNumber returns the parameter as float64 when it parses, the raw string otherwise,
// and nil when absent, leaving the type check to the forecast service.
func queryNumber(c *gin.Context, name string) any {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func statusFor(kind forecast.ResultKind) int {
	switch kind {
	case forecast.KindOK, forecast.KindNoData:
		return http.StatusOK
	case forecast.KindInvalidInput:
		return http.StatusBadRequest
	case forecast.KindAPIError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
