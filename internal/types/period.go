package types

import "fmt"

// ForecastPeriod is one named time segment of a multi-day forecast,
// e.g. "Tonight" or "Monday". Temperature is a pre-formatted display
// string; the raw numeric value is not carried past this point.
type ForecastPeriod struct {
	Name             string `json:"name" example:"Tonight"`
	Temperature      string `json:"temperature" example:"72°F"`
	WindSpeed        string `json:"windSpeed" example:"5 to 10 mph"`
	WindDirection    string `json:"windDirection" example:"SW"`
	DetailedForecast string `json:"detailedForecast"`
	Icon             string `json:"icon"`
}

// FormatTemperature combines a temperature value and unit letter into the
// display string used everywhere downstream, e.g. (72, "F") -> "72°F".
// The degree sign is UTF-8 U+00B0.
func FormatTemperature(value int, unit string) string {
	return fmt.Sprintf("%d°%s", value, unit)
}
