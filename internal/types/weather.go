package types

import "fmt"

// WeatherCode represents a WMO weather code
type WeatherCode int

// Weather represents weather conditions with a code and description
type Weather struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// Weather code constants
const (
	ClearSky              WeatherCode = 0
	MainlyClear           WeatherCode = 1
	PartlyCloudy          WeatherCode = 2
	Overcast              WeatherCode = 3
	Fog                   WeatherCode = 45
	RimeFog               WeatherCode = 48
	DrizzleLight          WeatherCode = 51
	DrizzleModerate       WeatherCode = 53
	DrizzleDense          WeatherCode = 55
	RainSlight            WeatherCode = 61
	RainModerate          WeatherCode = 63
	RainHeavy             WeatherCode = 65
	SnowSlight            WeatherCode = 71
	SnowModerate          WeatherCode = 73
	SnowHeavy             WeatherCode = 75
	RainShowersSlight     WeatherCode = 80
	RainShowersModerate   WeatherCode = 81
	RainShowersViolent    WeatherCode = 82
	Thunderstorm          WeatherCode = 95
	ThunderstormHail      WeatherCode = 96
	ThunderstormHeavyHail WeatherCode = 99
)

// weatherDescriptions covers the common codes only
var weatherDescriptions = map[WeatherCode]string{
	ClearSky:              "Clear sky",
	MainlyClear:           "Mainly clear",
	PartlyCloudy:          "Partly cloudy",
	Overcast:              "Overcast",
	Fog:                   "Fog",
	RimeFog:               "Rime fog",
	DrizzleLight:          "Light drizzle",
	DrizzleModerate:       "Moderate drizzle",
	DrizzleDense:          "Dense drizzle",
	RainSlight:            "Slight rain",
	RainModerate:          "Moderate rain",
	RainHeavy:             "Heavy rain",
	SnowSlight:            "Slight snow",
	SnowModerate:          "Moderate snow",
	SnowHeavy:             "Heavy snow",
	RainShowersSlight:     "Rain showers",
	RainShowersModerate:   "Rain showers",
	RainShowersViolent:    "Heavy rain showers",
	Thunderstorm:          "Thunderstorm",
	ThunderstormHail:      "Thunderstorm + hail",
	ThunderstormHeavyHail: "Thunderstorm + heavy hail",
}

// GetWeatherDescription returns the description for a given weather code,
// or "Code <n>" when the code is not in the table.
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[WeatherCode(code)]; ok {
		return desc
	}
	return fmt.Sprintf("Code %d", code)
}

// NewWeather creates a Weather instance from a weather code
func NewWeather(code int) Weather {
	return Weather{
		Code:        code,
		Description: GetWeatherDescription(code),
	}
}
