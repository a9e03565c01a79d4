package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-care-api/internal/models"
	"plant-care-api/internal/repositories"
	"plant-care-api/internal/services/weather"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

// MockGeocoder implements repositories.Geocoder for testing
type MockGeocoder struct {
	location  models.GeoLocation
	err       error
	panics    bool
	callCount int
}

func (m *MockGeocoder) Name() string { return "mock-geocoder" }

func (m *MockGeocoder) Geocode(ctx context.Context, city string) (models.GeoLocation, error) {
	m.callCount++
	if m.panics {
		panic("geocoder exploded")
	}
	return m.location, m.err
}

// MockForecastRepository implements repositories.ForecastRepository for testing
type MockForecastRepository struct {
	forecast  *models.DailyForecast
	err       error
	callCount int
	lat, lon  float64
}

func (m *MockForecastRepository) Name() string { return "mock-forecast" }

func (m *MockForecastRepository) FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error) {
	m.callCount++
	m.lat, m.lon = lat, lon
	return m.forecast, m.err
}

var utrecht = models.GeoLocation{Name: "Utrecht", Latitude: 52.0907, Longitude: 5.1214, Country: "Netherlands"}

func utrechtDays() *models.DailyForecast {
	return forecastOf(
		models.DayForecast{Date: "2025-08-22", WeatherCode: 1, TempMax: 22.5, PrecipSum: 0.0, PrecipProb: 10},
		models.DayForecast{Date: "2025-08-23", WeatherCode: 61, TempMax: 19.0, PrecipSum: 4.1, PrecipProb: 80},
		models.DayForecast{Date: "2025-08-24", WeatherCode: 0, TempMax: 24.0, PrecipSum: 0.0, PrecipProb: 5},
	)
}

func TestWeatherService_GetWaterSuggestion_Success(t *testing.T) {
	geo := &MockGeocoder{location: utrecht}
	fc := &MockForecastRepository{forecast: utrechtDays()}
	service := weather.NewWeatherService(geo, fc, nil, logger.Nop())

	got := service.GetWaterSuggestion(context.Background(), "Utrecht")

	assert.Equal(t, models.StatusSuccess, got.Status)
	assert.Contains(t, got.Location, "Utrecht")
	assert.Equal(t, "Utrecht, Netherlands", got.Location)
	require.NotNil(t, got.Today)
	assert.Equal(t, 2, got.Today.Level)
	assert.Equal(t, "max 22.5°C, precip 0.0mm, chance 10%", got.Today.Reason)
	assert.Equal(t, models.IconPartlyCloudy, got.Today.Icon)
	assert.Equal(t, "2025-08-22", got.Today.Date)

	require.Len(t, got.Next, 2)
	assert.Equal(t, "2025-08-23", got.Next[0].Date)
	assert.Equal(t, models.IconRain, got.Next[0].Icon)
	assert.Equal(t, models.IconClear, got.Next[1].Icon)

	assert.Equal(t, utrecht.Latitude, fc.lat)
	assert.Equal(t, utrecht.Longitude, fc.lon)
}

func TestWeatherService_GetWaterSuggestion_CityNotFound(t *testing.T) {
	geo := &MockGeocoder{err: models.ErrCityNotFound}
	fc := &MockForecastRepository{forecast: utrechtDays()}
	service := weather.NewWeatherService(geo, fc, nil, logger.Nop())

	got := service.GetWaterSuggestion(context.Background(), "NowhereVille")

	assert.Equal(t, models.StatusError, got.Status)
	assert.Contains(t, strings.ToLower(got.Message), "city not found")
	assert.Nil(t, got.Today)
	assert.Zero(t, fc.callCount, "forecast must not be fetched after a failed geocode")
}

func TestWeatherService_GetWaterSuggestion_NetworkErrors(t *testing.T) {
	t.Run("geocode", func(t *testing.T) {
		geo := &MockGeocoder{err: errors.Join(models.ErrNetwork, errors.New("dial tcp: connection refused"))}
		service := weather.NewWeatherService(geo, &MockForecastRepository{}, nil, nil)

		got := service.GetWaterSuggestion(context.Background(), "Utrecht")
		assert.Equal(t, models.StatusError, got.Status)
		assert.Contains(t, got.Message, "connection refused")
	})

	t.Run("forecast", func(t *testing.T) {
		geo := &MockGeocoder{location: utrecht}
		fc := &MockForecastRepository{err: errors.New("HTTP error (status 502): Bad Gateway")}
		service := weather.NewWeatherService(geo, fc, nil, nil)

		got := service.GetWaterSuggestion(context.Background(), "Utrecht")
		assert.Equal(t, models.StatusError, got.Status)
		assert.Contains(t, got.Message, "status 502")
		assert.Equal(t, 1, geo.callCount)
	})
}

func TestWeatherService_GetWaterSuggestion_NoForecast(t *testing.T) {
	for name, forecast := range map[string]*models.DailyForecast{
		"missing daily": nil,
		"empty daily":   {Time: []string{}},
	} {
		t.Run(name, func(t *testing.T) {
			service := weather.NewWeatherService(&MockGeocoder{location: utrecht}, &MockForecastRepository{forecast: forecast}, nil, nil)

			got := service.GetWaterSuggestion(context.Background(), "Utrecht")
			assert.Equal(t, models.StatusError, got.Status)
			assert.Equal(t, models.ErrNoForecast.Error(), got.Message)
		})
	}
}

func TestWeatherService_GetWaterSuggestion_RecoversPanics(t *testing.T) {
	service := weather.NewWeatherService(&MockGeocoder{panics: true}, &MockForecastRepository{}, nil, nil)

	var got models.WaterSuggestion
	require.NotPanics(t, func() {
		got = service.GetWaterSuggestion(context.Background(), "Utrecht")
	})
	assert.Equal(t, models.StatusError, got.Status)
	assert.Contains(t, got.Message, "geocoder exploded")
}

func TestWeatherService_GetWaterSuggestion_SingleDay(t *testing.T) {
	fc := &MockForecastRepository{forecast: forecastOf(models.DayForecast{Date: "2025-08-22", TempMax: 30})}
	service := weather.NewWeatherService(&MockGeocoder{location: utrecht}, fc, nil, nil)

	got := service.GetWaterSuggestion(context.Background(), "Utrecht")
	require.Equal(t, models.StatusSuccess, got.Status)
	assert.Equal(t, 3, got.Today.Level)
	assert.Empty(t, got.Next)
}

func TestWeatherService_RecordsMetrics(t *testing.T) {
	metrics := observe.NewMetrics("test")
	service := weather.NewWeatherService(&MockGeocoder{location: utrecht}, &MockForecastRepository{forecast: utrechtDays()}, metrics, nil)
	service.GetWaterSuggestion(context.Background(), "Utrecht")

	failing := weather.NewWeatherService(&MockGeocoder{err: models.ErrCityNotFound}, &MockForecastRepository{}, metrics, nil)
	failing.GetWaterSuggestion(context.Background(), "NowhereVille")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Suggestions.WithLabelValues("success", "2")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Suggestions.WithLabelValues("error", "none")))
}

// TestWeatherService_OpenMeteoEndToEnd drives the real repositories against
// stub Open-Meteo servers.
func TestWeatherService_OpenMeteoEndToEnd(t *testing.T) {
	geoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") == "NowhereVille" {
			_, _ = w.Write([]byte(`{"results": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"results": [{"name": "Utrecht", "latitude": 52.0907, "longitude": 5.1214, "country": "Netherlands"}]}`))
	}))
	defer geoSrv.Close()

	forecastSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"daily": {
			"time": ["2025-08-22", "2025-08-23", "2025-08-24"],
			"weathercode": [1, 3, 80],
			"temperature_2m_max": [22.5, 21.0, 18.4],
			"precipitation_sum": [0.0, 0.6, 7.5],
			"precipitation_probability_max": [10, 35, 90]
		}}`))
	}))
	defer forecastSrv.Close()

	geocoder := repositories.NewGeocodingRepository(geoSrv.URL, "en", geoSrv.Client(), repositories.ClientOptions{}, nil)
	forecasts := repositories.NewOpenMeteoRepository(forecastSrv.URL, forecastSrv.Client(), repositories.ClientOptions{}, nil)
	service := weather.NewWeatherService(geocoder, forecasts, nil, nil)

	got := service.GetWaterSuggestion(context.Background(), "Utrecht")
	require.Equal(t, models.StatusSuccess, got.Status, got.Message)
	assert.Equal(t, 2, got.Today.Level)
	assert.Len(t, got.Next, 2)
	assert.Contains(t, got.Location, "Utrecht")

	got = service.GetWaterSuggestion(context.Background(), "NowhereVille")
	assert.Equal(t, models.StatusError, got.Status)
	assert.Contains(t, strings.ToLower(got.Message), "city not found")

	forecastSrv.Close()
	got = service.GetWaterSuggestion(context.Background(), "Utrecht")
	assert.Equal(t, models.StatusError, got.Status)
	assert.Contains(t, got.Message, "network error")
	assert.Contains(t, got.Message, "failed to do request")
}
