package main

import (
	"errors"
	"net/http"
	"strings"

	"weather-server/internal/forecast"
	"weather-server/internal/types"

	"github.com/gin-gonic/gin"
)

// ForecastResponse is the successful forecast payload
type ForecastResponse struct {
	Success     bool                   `json:"success" example:"true"`
	Location    string                 `json:"location" example:"New York, NY"`
	Coordinates types.Coordinates      `json:"coordinates"`
	Forecast    []types.ForecastPeriod `json:"forecast"`
}

// ErrorResponse is the failure payload for forecast requests
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

// handleGetForecast godoc
// @Summary Get forecast for a location
// @Description Resolve a free-text US city or state name to its multi-day forecast
// @Tags forecast
// @Produce json
// @Param location query string true "US city or state name" example(New York)
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/forecast [get]
func (app *App) handleGetForecast(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Please provide a location (city or state name)",
		})
		return
	}

	result, err := app.forecastService.Resolve(c.Request.Context(), location)
	if err != nil {
		// Resolution failures are reported in the payload, not as an HTTP
		// error; only malformed input gets a non-2xx status.
		c.JSON(http.StatusOK, ErrorResponse{
			Success: false,
			Error:   userMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{
		Success:     true,
		Location:    result.Location,
		Coordinates: result.Coordinates,
		Forecast:    result.Periods,
	})
}

// userMessage extracts the caller-safe message from a resolution error.
// Anything without one is unexpected and gets the generic wrapper.
func userMessage(err error) string {
	var resolveErr *forecast.Error
	if errors.As(err, &resolveErr) {
		return resolveErr.Message
	}
	return "Error fetching forecast: " + err.Error()
}
