package openmeteo

// DailyForecastAPIResponse is the forecast payload for a daily-only request.
// Daily series are parallel arrays indexed by day; entries may be null.
type DailyForecastAPIResponse struct {
	Latitude             float64     `json:"latitude"`
	Longitude            float64     `json:"longitude"`
	GenerationtimeMs     float64     `json:"generationtime_ms"`
	UtcOffsetSeconds     int         `json:"utc_offset_seconds"`
	Timezone             string      `json:"timezone"`
	TimezoneAbbreviation string      `json:"timezone_abbreviation"`
	Elevation            float64     `json:"elevation"`
	DailyUnits           *DailyUnits `json:"daily_units,omitempty"`
	Daily                *Daily      `json:"daily,omitempty"`
}

type DailyUnits struct {
	Time             string `json:"time"`
	WeatherCode      string `json:"weather_code"`
	Temperature2MMax string `json:"temperature_2m_max"`
	Temperature2MMin string `json:"temperature_2m_min"`
	PrecipitationSum string `json:"precipitation_sum"`
}

type Daily struct {
	Time             []string   `json:"time"`
	WeatherCode      []*int     `json:"weather_code"`
	Temperature2MMax []*float64 `json:"temperature_2m_max"`
	Temperature2MMin []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}
