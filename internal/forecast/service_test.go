package forecast

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"weather-server/internal/providers/nominatim"
	"weather-server/internal/providers/nws"
)

// Mock providers for testing

type mockGeocoder struct {
	results []nominatim.SearchResult
	err     error
	calls   int
}

func (m *mockGeocoder) Search(ctx context.Context, query string) ([]nominatim.SearchResult, error) {
	m.calls++
	return m.results, m.err
}

type mockWeatherProvider struct {
	point         *nws.PointAPIResponse
	pointErr      error
	forecast      *nws.ForecastAPIResponse
	forecastErr   error
	pointCalls    int
	forecastCalls int
	forecastURL   string
}

func (m *mockWeatherProvider) GetPoint(ctx context.Context, latitude, longitude float64) (*nws.PointAPIResponse, error) {
	m.pointCalls++
	return m.point, m.pointErr
}

func (m *mockWeatherProvider) GetForecast(ctx context.Context, forecastURL string) (*nws.ForecastAPIResponse, error) {
	m.forecastCalls++
	m.forecastURL = forecastURL
	return m.forecast, m.forecastErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newYorkPoint() *nws.PointAPIResponse {
	point := &nws.PointAPIResponse{}
	point.Properties.Forecast = "https://api.weather.gov/gridpoints/OKX/33,35/forecast"
	point.Properties.RelativeLocation.Properties.City = "New York"
	point.Properties.RelativeLocation.Properties.State = "NY"
	return point
}

func sevenPeriodForecast() *nws.ForecastAPIResponse {
	names := []string{"Tonight", "Monday", "Monday Night", "Tuesday", "Tuesday Night", "Wednesday", "Wednesday Night"}
	resp := &nws.ForecastAPIResponse{}
	for i, name := range names {
		resp.Properties.Periods = append(resp.Properties.Periods, nws.Period{
			Number:           i + 1,
			Name:             name,
			Temperature:      70 + i,
			TemperatureUnit:  "F",
			WindSpeed:        "5 to 10 mph",
			WindDirection:    "SW",
			DetailedForecast: "Partly cloudy.",
			Icon:             "https://api.weather.gov/icons/land/night/few",
		})
	}
	return resp
}

func TestForecastService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		geocoder    *mockGeocoder
		weather     *mockWeatherProvider
		wantErr     bool
		wantKind    ErrorKind
		errContains string
		validate    func(*testing.T, *Forecast, *mockGeocoder, *mockWeatherProvider)
	}{
		{
			name:     "successful resolution truncates to five periods",
			location: "New York",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "40.7128", Lon: "-74.0060", DisplayName: "New York, United States"}},
			},
			weather: &mockWeatherProvider{
				point:    newYorkPoint(),
				forecast: sevenPeriodForecast(),
			},
			validate: func(t *testing.T, fc *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if fc.Location != "New York, NY" {
					t.Errorf("Location = %q, want %q", fc.Location, "New York, NY")
				}
				if fc.Coordinates.Latitude != 40.7128 || fc.Coordinates.Longitude != -74.0060 {
					t.Errorf("Coordinates = %+v, want 40.7128, -74.0060", fc.Coordinates)
				}
				if len(fc.Periods) != 5 {
					t.Fatalf("len(Periods) = %d, want 5", len(fc.Periods))
				}
				wantNames := []string{"Tonight", "Monday", "Monday Night", "Tuesday", "Tuesday Night"}
				for i, want := range wantNames {
					if fc.Periods[i].Name != want {
						t.Errorf("Periods[%d].Name = %q, want %q", i, fc.Periods[i].Name, want)
					}
				}
				if fc.Periods[0].Temperature != "70°F" {
					t.Errorf("Periods[0].Temperature = %q, want %q", fc.Periods[0].Temperature, "70°F")
				}
				if w.forecastURL != "https://api.weather.gov/gridpoints/OKX/33,35/forecast" {
					t.Errorf("forecast fetched from %q, want the points URL", w.forecastURL)
				}
			},
		},
		{
			name:     "geocoder returns no results",
			location: "Atlantis",
			geocoder: &mockGeocoder{results: []nominatim.SearchResult{}},
			weather:  &mockWeatherProvider{},
			wantErr:  true,
			wantKind: KindLocationNotFound,
			errContains: "Could not find location 'Atlantis'. " +
				"Please try a valid US city or state name.",
			validate: func(t *testing.T, _ *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if w.pointCalls != 0 || w.forecastCalls != 0 {
					t.Errorf("downstream calls after geocode miss: point=%d forecast=%d, want 0", w.pointCalls, w.forecastCalls)
				}
			},
		},
		{
			name:        "geocoder transport failure",
			location:    "New York",
			geocoder:    &mockGeocoder{err: errors.New("connection refused")},
			weather:     &mockWeatherProvider{},
			wantErr:     true,
			wantKind:    KindLocationNotFound,
			errContains: "Could not find location 'New York'",
			validate: func(t *testing.T, _ *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if w.pointCalls != 0 {
					t.Errorf("pointCalls = %d, want 0", w.pointCalls)
				}
			},
		},
		{
			name:     "geocoder returns unparseable coordinates",
			location: "New York",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "not-a-number", Lon: "-74.0060"}},
			},
			weather:     &mockWeatherProvider{},
			wantErr:     true,
			wantKind:    KindLocationNotFound,
			errContains: "Could not find location",
		},
		{
			name:     "grid lookup failure",
			location: "Honolulu",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "21.3069", Lon: "-157.8583"}},
			},
			weather:     &mockWeatherProvider{pointErr: errors.New("status 404")},
			wantErr:     true,
			wantKind:    KindOutOfCoverageArea,
			errContains: "This location is not in a US forecast area.",
			validate: func(t *testing.T, _ *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if w.forecastCalls != 0 {
					t.Errorf("forecastCalls = %d, want 0", w.forecastCalls)
				}
			},
		},
		{
			name:     "points response missing forecast URL",
			location: "New York",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "40.7128", Lon: "-74.0060"}},
			},
			weather:     &mockWeatherProvider{point: &nws.PointAPIResponse{}},
			wantErr:     true,
			wantKind:    KindForecastUnavailable,
			errContains: "Forecast data not available for this location.",
			validate: func(t *testing.T, _ *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if w.forecastCalls != 0 {
					t.Errorf("forecastCalls = %d, want 0", w.forecastCalls)
				}
			},
		},
		{
			name:     "forecast fetch failure",
			location: "New York",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "40.7128", Lon: "-74.0060"}},
			},
			weather: &mockWeatherProvider{
				point:       newYorkPoint(),
				forecastErr: errors.New("status 503"),
			},
			wantErr:     true,
			wantKind:    KindFetchFailed,
			errContains: "Unable to fetch forecast data.",
		},
		{
			name:     "missing relative location falls back to Unknown",
			location: "New York",
			geocoder: &mockGeocoder{
				results: []nominatim.SearchResult{{Lat: "40.7128", Lon: "-74.0060"}},
			},
			weather: &mockWeatherProvider{
				point: func() *nws.PointAPIResponse {
					p := &nws.PointAPIResponse{}
					p.Properties.Forecast = "https://api.weather.gov/gridpoints/OKX/33,35/forecast"
					return p
				}(),
				forecast: sevenPeriodForecast(),
			},
			validate: func(t *testing.T, fc *Forecast, g *mockGeocoder, w *mockWeatherProvider) {
				if fc.Location != "Unknown, Unknown" {
					t.Errorf("Location = %q, want %q", fc.Location, "Unknown, Unknown")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewServiceWithProviders(tt.geocoder, tt.weather, 5, testLogger())

			got, err := service.Resolve(context.Background(), tt.location)

			if tt.wantErr {
				if err == nil {
					t.Fatal("Resolve() expected error but got none")
				}
				var resolveErr *Error
				if !errors.As(err, &resolveErr) {
					t.Fatalf("Resolve() error type = %T, want *Error", err)
				}
				if resolveErr.Kind != tt.wantKind {
					t.Errorf("Kind = %v, want %v", resolveErr.Kind, tt.wantKind)
				}
				if tt.errContains != "" && !strings.Contains(resolveErr.Message, tt.errContains) {
					t.Errorf("Message = %q, want message containing %q", resolveErr.Message, tt.errContains)
				}
				if tt.validate != nil {
					tt.validate(t, nil, tt.geocoder, tt.weather)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve() unexpected error = %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, got, tt.geocoder, tt.weather)
			}
		})
	}
}

func TestForecastService_ResolveIsIdempotent(t *testing.T) {
	geocoder := &mockGeocoder{
		results: []nominatim.SearchResult{{Lat: "40.7128", Lon: "-74.0060"}},
	}
	weather := &mockWeatherProvider{
		point:    newYorkPoint(),
		forecast: sevenPeriodForecast(),
	}
	service := NewServiceWithProviders(geocoder, weather, 5, testLogger())

	first, err := service.Resolve(context.Background(), "New York")
	if err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}
	second, err := service.Resolve(context.Background(), "New York")
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolution differs:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}
