package nws

// PointAPIResponse is the /points/{lat},{lon} response. Only the fields the
// service reads are mapped; the API returns many more.
type PointAPIResponse struct {
	Id         string `json:"id"`
	Properties struct {
		Cwa              string `json:"cwa"`
		GridId           string `json:"gridId"`
		GridX            int    `json:"gridX"`
		GridY            int    `json:"gridY"`
		Forecast         string `json:"forecast"`
		ForecastHourly   string `json:"forecastHourly"`
		TimeZone         string `json:"timeZone"`
		RelativeLocation struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// ForecastAPIResponse is the gridpoint forecast document linked from the
// points response. Periods are ordered nearest-term first.
type ForecastAPIResponse struct {
	Properties struct {
		Updated string   `json:"updated"`
		Units   string   `json:"units"`
		Periods []Period `json:"periods"`
	} `json:"properties"`
}

// Period is one entry of the forecast's periods array.
type Period struct {
	Number           int    `json:"number"`
	Name             string `json:"name"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	IsDaytime        bool   `json:"isDaytime"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	Icon             string `json:"icon"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
}
