package types

// Coords is a latitude/longitude pair in decimal degrees. Range checks are
// left to the caller.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoords points at London, UK.
var DefaultCoords = Coords{
	Latitude:  51.5072,
	Longitude: -0.1276,
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
