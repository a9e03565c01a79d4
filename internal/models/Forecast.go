package models

// ForecastDays is the number of daily aggregates requested per lookup.
const ForecastDays = 3

// defaultWeatherCode is used when the provider omits a day's weather code (overcast).
const defaultWeatherCode = 3

// DailyForecast mirrors the Open-Meteo "daily" block: parallel arrays indexed by day.
// Null entries decode to nil and are treated as missing.
type DailyForecast struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weathercode"`
	Temperature2mMax            []*float64 `json:"temperature_2m_max"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}

// DayForecast is one resolved day of a DailyForecast.
type DayForecast struct {
	Date        string  `json:"date" example:"2025-08-22"`
	WeatherCode int     `json:"weathercode" example:"1"`
	TempMax     float64 `json:"temp_max" example:"22.5"`
	PrecipSum   float64 `json:"precip_sum" example:"0"`
	PrecipProb  float64 `json:"precip_prob" example:"10"`
}

// Days returns the number of days in the forecast; a nil forecast has none.
func (f *DailyForecast) Days() int {
	if f == nil {
		return 0
	}
	return len(f.Time)
}

// Day resolves day i, defaulting missing numeric fields to 0 and a missing
// weather code to overcast. i must be within [0, Days()).
func (f *DailyForecast) Day(i int) DayForecast {
	return DayForecast{
		Date:        f.Time[i],
		WeatherCode: intAt(f.WeatherCode, i, defaultWeatherCode),
		TempMax:     floatAt(f.Temperature2mMax, i),
		PrecipSum:   floatAt(f.PrecipitationSum, i),
		PrecipProb:  floatAt(f.PrecipitationProbabilityMax, i),
	}
}

func floatAt(values []*float64, i int) float64 {
	if i < 0 || i >= len(values) || values[i] == nil {
		return 0
	}
	return *values[i]
}

func intAt(values []*int, i int, def int) int {
	if i < 0 || i >= len(values) || values[i] == nil {
		return def
	}
	return *values[i]
}
