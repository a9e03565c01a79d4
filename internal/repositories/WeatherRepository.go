package repositories

import (
	"context"

	"plant-care-api/config"
	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, city string) (models.GeoLocation, error)
}

type ForecastRepository interface {
	Name() string
	FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error)
}

// InitWeatherRepositories builds both Open-Meteo clients on one HTTP client.
// Each provider gets its own limiter and breaker.
func InitWeatherRepositories(cfg *config.Config, metrics *observe.Metrics, l *logger.Logger) (Geocoder, ForecastRepository) {
	httpClient := NewHTTPClient(cfg.Weather.Timeout)
	opts := ClientOptions{
		RequestsPerSecond: cfg.Weather.RequestsPerSecond,
		Burst:             cfg.Weather.Burst,
		BreakerFailures:   cfg.Weather.BreakerFailures,
		BreakerOpenFor:    cfg.Weather.BreakerOpenFor,
		Metrics:           metrics,
	}

	return NewGeocodingRepository(cfg.Weather.GeocodingURL, cfg.Weather.Language, httpClient, opts, l),
		NewOpenMeteoRepository(cfg.Weather.ForecastURL, httpClient, opts, l)
}
