package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"weather-server/internal/config"
	"weather-server/internal/providers/nominatim"
	"weather-server/internal/providers/nws"
)

// Smoke test for the upstream chain: geocode each location, look up its
// grid point, fetch the forecast, and print what came back at every hop.
// Run: go run ./cmd/debug [location ...]
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	locations := os.Args[1:]
	if len(locations) == 0 {
		locations = []string{"New York", "San Francisco", "Los Angeles", "Texas"}
	}

	timeout := cfg.UpstreamTimeout()
	geocoder := nominatim.NewClient(cfg.Upstream.NominatimBaseURL, cfg.Upstream.UserAgent, timeout)
	weather := nws.NewClient(cfg.Upstream.NWSBaseURL, cfg.Upstream.UserAgent, timeout)

	ctx := context.Background()
	for _, loc := range locations {
		testLocation(ctx, geocoder, weather, loc)
	}
}

// truncateDetail shortens a detailed forecast for one-line display,
// cutting on runes so a multi-byte degree sign is never split
func truncateDetail(detail string) string {
	if r := []rune(detail); len(r) > 60 {
		return string(r[:60]) + "..."
	}
	return detail
}

func testLocation(ctx context.Context, geocoder *nominatim.Client, weather *nws.Client, location string) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("Testing: %s\n", location)
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	fmt.Printf("1. Geocoding %q...\n", location)
	results, err := geocoder.Search(ctx, location)
	if err != nil {
		fmt.Printf("[FAIL] Geocoding failed: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("[FAIL] Geocoding failed - no results found")
		return
	}

	latitude, latErr := strconv.ParseFloat(results[0].Lat, 64)
	longitude, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		fmt.Printf("[FAIL] Unparseable coordinates: lat=%q lon=%q\n", results[0].Lat, results[0].Lon)
		return
	}
	fmt.Printf("[OK] Found: %s\n", results[0].DisplayName)
	fmt.Printf("   Coordinates: %v, %v\n\n", latitude, longitude)

	fmt.Println("2. Fetching NWS points data...")
	point, err := weather.GetPoint(ctx, latitude, longitude)
	if err != nil {
		fmt.Printf("[FAIL] NWS points request failed: %v\n", err)
		return
	}
	fmt.Println("[OK] Points data received")

	if point.Properties.Forecast == "" {
		fmt.Println("[FAIL] No forecast URL in points response")
		return
	}
	fmt.Printf("   Forecast URL: %s\n\n", point.Properties.Forecast)

	fmt.Println("3. Fetching forecast data...")
	forecastResp, err := weather.GetForecast(ctx, point.Properties.Forecast)
	if err != nil {
		fmt.Printf("[FAIL] Forecast request failed: %v\n", err)
		return
	}

	periods := forecastResp.Properties.Periods
	fmt.Println("[OK] Forecast data received")
	fmt.Printf("   Number of periods: %d\n", len(periods))

	if len(periods) > 0 {
		fmt.Println("\n   First 2 periods:")
		for _, p := range periods[:min(2, len(periods))] {
			fmt.Printf("   - %s: %d°%s, %s\n", p.Name, p.Temperature, p.TemperatureUnit, truncateDetail(p.DetailedForecast))
		}
	}
}
