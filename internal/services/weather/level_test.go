package weather_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-care-api/internal/models"
	"plant-care-api/internal/services/weather"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int { return &v }

func forecastOf(days ...models.DayForecast) *models.DailyForecast {
	f := &models.DailyForecast{}
	for _, d := range days {
		f.Time = append(f.Time, d.Date)
		f.WeatherCode = append(f.WeatherCode, intPtr(d.WeatherCode))
		f.Temperature2mMax = append(f.Temperature2mMax, floatPtr(d.TempMax))
		f.PrecipitationSum = append(f.PrecipitationSum, floatPtr(d.PrecipSum))
		f.PrecipitationProbabilityMax = append(f.PrecipitationProbabilityMax, floatPtr(d.PrecipProb))
	}
	return f
}

func TestComputeWaterLevel_Rules(t *testing.T) {
	tests := []struct {
		name  string
		day   models.DayForecast
		level int
	}{
		{"hot and dry", models.DayForecast{TempMax: 30, PrecipSum: 0.2, PrecipProb: 10}, 3},
		{"exactly 28 is hot", models.DayForecast{TempMax: 28, PrecipSum: 0, PrecipProb: 0}, 3},
		{"hot but 1mm rain", models.DayForecast{TempMax: 30, PrecipSum: 1, PrecipProb: 10}, 2},
		{"hot but 30 percent chance", models.DayForecast{TempMax: 30, PrecipSum: 0, PrecipProb: 30}, 2},
		{"hot and 29.6 percent chance", models.DayForecast{TempMax: 30, PrecipSum: 0, PrecipProb: 29.6}, 3},
		{"warm and 59.7 percent chance", models.DayForecast{TempMax: 25, PrecipSum: 0, PrecipProb: 59.7}, 2},
		{"warm", models.DayForecast{TempMax: 22.5, PrecipSum: 0, PrecipProb: 10}, 2},
		{"exactly 22 is warm", models.DayForecast{TempMax: 22, PrecipSum: 2.9, PrecipProb: 59}, 2},
		{"warm but wet", models.DayForecast{TempMax: 25, PrecipSum: 3, PrecipProb: 10}, 1},
		{"warm but likely rain", models.DayForecast{TempMax: 25, PrecipSum: 0, PrecipProb: 60}, 1},
		{"cool", models.DayForecast{TempMax: 21.9, PrecipSum: 0, PrecipProb: 0}, 1},
		{"hot and stormy", models.DayForecast{TempMax: 35, PrecipSum: 12, PrecipProb: 90}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := weather.ComputeWaterLevel(forecastOf(tt.day), 0)
			assert.Equal(t, tt.level, got.Level)
		})
	}
}

func TestComputeWaterLevel_Reason(t *testing.T) {
	got := weather.ComputeWaterLevel(forecastOf(models.DayForecast{TempMax: 22.5, PrecipSum: 0, PrecipProb: 10}), 0)
	assert.Equal(t, models.WaterLevel{Level: 2, Reason: "max 22.5°C, precip 0.0mm, chance 10%"}, got)

	got = weather.ComputeWaterLevel(forecastOf(models.DayForecast{TempMax: 31.26, PrecipSum: 0.04, PrecipProb: 5}), 0)
	assert.Equal(t, "max 31.3°C, precip 0.0mm, chance 5%", got.Reason)

	got = weather.ComputeWaterLevel(forecastOf(models.DayForecast{TempMax: 30, PrecipSum: 0, PrecipProb: 29.6}), 0)
	assert.Equal(t, models.WaterLevel{Level: 3, Reason: "max 30.0°C, precip 0.0mm, chance 30%"}, got)
}

func TestComputeWaterLevel_EmptyForecast(t *testing.T) {
	want := models.WaterLevel{Level: 1, Reason: "No forecast"}

	assert.Equal(t, want, weather.ComputeWaterLevel(nil, 0))
	assert.Equal(t, want, weather.ComputeWaterLevel(&models.DailyForecast{Time: []string{}}, 0))
	assert.Equal(t, want, weather.ComputeWaterLevel(&models.DailyForecast{}, 5))
}

func TestComputeWaterLevel_LevelAlwaysInRange(t *testing.T) {
	forecast := forecastOf(
		models.DayForecast{Date: "2025-08-22", TempMax: 30, PrecipSum: 0, PrecipProb: 0},
		models.DayForecast{Date: "2025-08-23", TempMax: 23, PrecipSum: 1, PrecipProb: 20},
		models.DayForecast{Date: "2025-08-24", TempMax: 12, PrecipSum: 9, PrecipProb: 95},
	)

	for idx := -10; idx <= 20; idx++ {
		got := weather.ComputeWaterLevel(forecast, idx)
		assert.Contains(t, []int{1, 2, 3}, got.Level, "index %d", idx)
	}
}

func TestComputeWaterLevel_ClampsIndex(t *testing.T) {
	forecast := forecastOf(
		models.DayForecast{Date: "2025-08-22", TempMax: 30, PrecipSum: 0, PrecipProb: 0},
		models.DayForecast{Date: "2025-08-23", TempMax: 23, PrecipSum: 1, PrecipProb: 20},
		models.DayForecast{Date: "2025-08-24", TempMax: 12, PrecipSum: 9, PrecipProb: 95},
	)

	assert.Equal(t, weather.ComputeWaterLevel(forecast, 2), weather.ComputeWaterLevel(forecast, 10))
	assert.Equal(t, weather.ComputeWaterLevel(forecast, 0), weather.ComputeWaterLevel(forecast, -3))
}

func TestComputeWaterLevel_Monotonic(t *testing.T) {
	hot := weather.ComputeWaterLevel(forecastOf(models.DayForecast{TempMax: 29, PrecipSum: 0.5, PrecipProb: 20}), 0)
	warm := weather.ComputeWaterLevel(forecastOf(models.DayForecast{TempMax: 24, PrecipSum: 0.5, PrecipProb: 20}), 0)

	assert.Equal(t, 3, hot.Level)
	assert.Equal(t, 2, warm.Level)
}

func TestComputeWaterLevel_MissingFieldsDefaultToZero(t *testing.T) {
	forecast := &models.DailyForecast{
		Time:             []string{"2025-08-22"},
		Temperature2mMax: []*float64{floatPtr(29)},
	}

	got := weather.ComputeWaterLevel(forecast, 0)
	assert.Equal(t, models.WaterLevel{Level: 3, Reason: "max 29.0°C, precip 0.0mm, chance 0%"}, got)
}

func TestMapWeatherIcon(t *testing.T) {
	tests := map[int]models.IconKey{
		0:   models.IconClear,
		1:   models.IconPartlyCloudy,
		3:   models.IconPartlyCloudy,
		45:  models.IconFog,
		48:  models.IconFog,
		51:  models.IconRain,
		67:  models.IconRain,
		80:  models.IconRain,
		82:  models.IconRain,
		71:  models.IconSnow,
		77:  models.IconSnow,
		95:  models.IconStorm,
		99:  models.IconStorm,
		4:   models.IconCloud,
		46:  models.IconCloud,
		68:  models.IconCloud,
		85:  models.IconCloud,
		-1:  models.IconCloud,
		120: models.IconStorm,
	}

	for code, want := range tests {
		assert.Equal(t, want, weather.MapWeatherIcon(code), "code %d", code)
	}
}

func TestBuildEntries_RoundsProbabilityForDisplay(t *testing.T) {
	entries := weather.BuildEntries(forecastOf(models.DayForecast{Date: "2025-08-22", WeatherCode: 0, TempMax: 30, PrecipProb: 29.6}))

	require.Len(t, entries, 1)
	assert.Equal(t, 30, entries[0].PrecipProb)
	assert.Equal(t, models.IconClear, entries[0].Icon)
}
