package forecast

import "weather-server/internal/types"

// Forecast is a fully resolved forecast for one location query.
type Forecast struct {
	// Location is the human-readable place name from the grid lookup,
	// "City, State" with "Unknown" filling either missing side.
	Location    string
	Coordinates types.Coordinates
	Periods     []types.ForecastPeriod
}
