package forecast

import (
	"context"
	"log/slog"
	"strconv"

	"weather-server/internal/config"
	"weather-server/internal/providers/nominatim"
	"weather-server/internal/providers/nws"
	"weather-server/internal/types"
)

// Geocoder resolves a free-text place name to coordinates
type Geocoder interface {
	Search(ctx context.Context, query string) ([]nominatim.SearchResult, error)
}

// WeatherProvider supplies the grid lookup and the forecast document
type WeatherProvider interface {
	GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error)
	GetForecast(ctx context.Context, forecastURL string) (*nws.ForecastAPIResponse, error)
}

// Service resolves a location query to a forecast
type Service interface {
	// Resolve runs the geocode -> grid lookup -> forecast fetch chain.
	// Failures are returned as *Error with a user-facing message; the
	// chain short-circuits on the first failed hop.
	Resolve(ctx context.Context, location string) (*Forecast, error)
}

type forecastService struct {
	geocoder        Geocoder
	weatherProvider WeatherProvider
	periodLimit     int
	logger          *slog.Logger
}

// NewService creates a forecast service backed by the real Nominatim and
// NWS clients configured from cfg.
func NewService(cfg *config.Config, logger *slog.Logger) Service {
	timeout := cfg.UpstreamTimeout()
	return NewServiceWithProviders(
		nominatim.NewClient(cfg.Upstream.NominatimBaseURL, cfg.Upstream.UserAgent, timeout),
		nws.NewClient(cfg.Upstream.NWSBaseURL, cfg.Upstream.UserAgent, timeout),
		cfg.App.ForecastPeriods,
		logger,
	)
}

// NewServiceWithProviders creates a forecast service with custom providers.
// This is useful for testing with mock providers.
func NewServiceWithProviders(geocoder Geocoder, weatherProvider WeatherProvider, periodLimit int, logger *slog.Logger) Service {
	return &forecastService{
		geocoder:        geocoder,
		weatherProvider: weatherProvider,
		periodLimit:     periodLimit,
		logger:          logger.With("component", "forecast-service"),
	}
}

func (s *forecastService) Resolve(ctx context.Context, location string) (*Forecast, error) {
	// Hop 1: geocode the location
	coords, err := s.geocode(ctx, location)
	if err != nil {
		s.logger.Info("geocoding failed", "location", location, "error", err)
		return nil, err
	}

	// Hop 2: look up the forecast grid point
	point, err := s.weatherProvider.GetPoint(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Info("grid lookup failed",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, outOfCoverageArea(err)
	}

	forecastURL := point.Properties.Forecast
	if forecastURL == "" {
		s.logger.Info("points response has no forecast URL",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
		)
		return nil, forecastUnavailable()
	}

	// Hop 3: fetch the forecast document
	forecastResp, err := s.weatherProvider.GetForecast(ctx, forecastURL)
	if err != nil {
		s.logger.Info("forecast fetch failed", "url", forecastURL, "error", err)
		return nil, fetchFailed(err)
	}

	city := point.Properties.RelativeLocation.Properties.City
	if city == "" {
		city = "Unknown"
	}
	state := point.Properties.RelativeLocation.Properties.State
	if state == "" {
		state = "Unknown"
	}

	periods := forecastResp.Properties.Periods
	if len(periods) > s.periodLimit {
		periods = periods[:s.periodLimit]
	}

	result := &Forecast{
		Location:    city + ", " + state,
		Coordinates: coords,
		Periods:     make([]types.ForecastPeriod, 0, len(periods)),
	}
	for _, p := range periods {
		result.Periods = append(result.Periods, types.ForecastPeriod{
			Name:             p.Name,
			Temperature:      types.FormatTemperature(p.Temperature, p.TemperatureUnit),
			WindSpeed:        p.WindSpeed,
			WindDirection:    p.WindDirection,
			DetailedForecast: p.DetailedForecast,
			Icon:             p.Icon,
		})
	}

	return result, nil
}

// geocode maps a location query to coordinates. A transport failure, an
// empty result set, and unparseable coordinates all surface as the same
// location-not-found outcome.
func (s *forecastService) geocode(ctx context.Context, location string) (types.Coordinates, error) {
	results, err := s.geocoder.Search(ctx, location)
	if err != nil {
		return types.Coordinates{}, locationNotFound(location, err)
	}
	if len(results) == 0 {
		return types.Coordinates{}, locationNotFound(location, nil)
	}

	latitude, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Coordinates{}, locationNotFound(location, err)
	}
	longitude, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Coordinates{}, locationNotFound(location, err)
	}

	return types.NewCoordinates(latitude, longitude), nil
}
