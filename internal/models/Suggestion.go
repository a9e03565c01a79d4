package models

// IconKey is the display category for a WMO weather code.
type IconKey string

const (
	IconClear        IconKey = "clear"
	IconPartlyCloudy IconKey = "partly-cloudy"
	IconFog          IconKey = "fog"
	IconRain         IconKey = "rain"
	IconSnow         IconKey = "snow"
	IconStorm        IconKey = "storm"
	IconCloud        IconKey = "cloud"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WaterLevel is the watering urgency for a single day, 1 (low) to 3 (high).
type WaterLevel struct {
	Level  int    `json:"level" example:"2"`
	Reason string `json:"reason" example:"max 22.5°C, precip 0.0mm, chance 10%"`
}

// ForecastEntry is one display row of the suggestion widget.
type ForecastEntry struct {
	Date        string  `json:"date" example:"2025-08-22"`
	TempMax     float64 `json:"tempMax" example:"22.5"`
	PrecipSum   float64 `json:"precipSum" example:"0"`
	PrecipProb  int     `json:"precipProb" example:"10"`
	WeatherCode int     `json:"weathercode" example:"1"`
	Icon        IconKey `json:"icon" example:"partly-cloudy"`
}

type TodayEntry struct {
	ForecastEntry
	WaterLevel
}

// WaterSuggestion is the result of a suggestion lookup. Failures are carried in
// Status/Message instead of an error value.
type WaterSuggestion struct {
	Status   string          `json:"status" example:"success"`
	Message  string          `json:"message,omitempty"`
	Location string          `json:"location,omitempty" example:"Utrecht, Netherlands"`
	Today    *TodayEntry     `json:"today,omitempty"`
	Next     []ForecastEntry `json:"next,omitempty"`
}

func ErrorSuggestion(err error) WaterSuggestion {
	return WaterSuggestion{Status: StatusError, Message: err.Error()}
}
