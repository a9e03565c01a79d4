package weather

import (
	"fmt"
	"math"

	"plant-care-api/internal/models"
)

// Watering thresholds. These are fixed product values, not configuration.
const (
	highTempMax    = 28.0
	highPrecipSum  = 1.0
	highPrecipProb = 30.0

	mediumTempMax    = 22.0
	mediumPrecipSum  = 3.0
	mediumPrecipProb = 60.0
)

const (
	LevelLow    = 1
	LevelMedium = 2
	LevelHigh   = 3
)

const noForecastReason = "No forecast"

// ComputeWaterLevel derives the watering urgency for one day of the forecast.
// dayIndex is clamped into range; an empty forecast yields the lowest level.
func ComputeWaterLevel(forecast *models.DailyForecast, dayIndex int) models.WaterLevel {
	days := forecast.Days()
	if days == 0 {
		return models.WaterLevel{Level: LevelLow, Reason: noForecastReason}
	}

	day := forecast.Day(clamp(dayIndex, 0, days-1))

	level := LevelLow
	switch {
	case day.TempMax >= highTempMax && day.PrecipSum < highPrecipSum && day.PrecipProb < highPrecipProb:
		level = LevelHigh
	case day.TempMax >= mediumTempMax && day.PrecipSum < mediumPrecipSum && day.PrecipProb < mediumPrecipProb:
		level = LevelMedium
	}

	return models.WaterLevel{
		Level:  level,
		Reason: fmt.Sprintf("max %.1f°C, precip %.1fmm, chance %d%%", day.TempMax, day.PrecipSum, roundPercent(day.PrecipProb)),
	}
}

// roundPercent is for display only, the rules compare the raw probability.
func roundPercent(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
