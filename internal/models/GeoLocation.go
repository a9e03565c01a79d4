package models

import "fmt"

// GeoLocation is the best geocoding match for a free-text city name.
type GeoLocation struct {
	Latitude  float64 `json:"latitude" example:"52.0907"`
	Longitude float64 `json:"longitude" example:"5.1214"`
	Name      string  `json:"name" example:"Utrecht"`
	Country   string  `json:"country" example:"Netherlands"`
}

// DisplayName renders "Name, Country".
func (g GeoLocation) DisplayName() string {
	return fmt.Sprintf("%s, %s", g.Name, g.Country)
}

func (g GeoLocation) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", g.Latitude, g.Longitude)
}
