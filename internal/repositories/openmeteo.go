package repositories

import (
	"context"
	"fmt"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"
	dailyFields      = "weathercode,temperature_2m_max,precipitation_sum,precipitation_probability_max"
)

type OpenMeteoRepository struct {
	baseURL string
	getter  *jsonGetter
	l       *logger.Logger
}

func NewOpenMeteoRepository(baseURL string, httpClient HTTPClient, opts ClientOptions, l *logger.Logger) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	if l == nil {
		l = logger.Nop()
	}

	return &OpenMeteoRepository{
		baseURL: baseURL,
		getter:  newJSONGetter("open-meteo", httpClient, opts, l),
		l:       l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type openMeteoResponse struct {
	Daily *models.DailyForecast `json:"daily"`
}

// FetchForecast requests models.ForecastDays days of daily aggregates in the
// location's own time zone. A response without a daily block yields (nil, nil).
func (o *OpenMeteoRepository) FetchForecast(ctx context.Context, lat, lon float64) (*models.DailyForecast, error) {
	url := fmt.Sprintf("%s?latitude=%f&longitude=%f&daily=%s&timezone=auto&forecast_days=%d",
		o.baseURL, lat, lon, dailyFields, models.ForecastDays)

	o.l.Debug("making openmeteo API request", map[string]any{
		"params": models.GeoLocation{Latitude: lat, Longitude: lon}.RequestParams(),
	})

	var response openMeteoResponse
	if err := o.getter.getJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	o.l.Debug("parsed API response", map[string]any{
		"days": response.Daily.Days(),
	})

	return response.Daily, nil
}
