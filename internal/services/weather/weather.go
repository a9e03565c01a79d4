package weather

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"plant-care-api/internal/models"
	"plant-care-api/internal/repositories"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

// WeatherService turns a city name into a watering suggestion. Every call
// geocodes and fetches afresh; nothing is cached and nothing is retried.
type WeatherService struct {
	geocoder  repositories.Geocoder
	forecasts repositories.ForecastRepository
	metrics   *observe.Metrics
	l         *logger.Logger
}

func NewWeatherService(
	geocoder repositories.Geocoder,
	forecasts repositories.ForecastRepository,
	metrics *observe.Metrics,
	l *logger.Logger,
) *WeatherService {
	if l == nil {
		l = logger.Nop()
	}
	return &WeatherService{
		geocoder:  geocoder,
		forecasts: forecasts,
		metrics:   metrics,
		l:         l,
	}
}

// GetWaterSuggestion never returns an error: failures are reported in the
// suggestion's status and message.
func (s *WeatherService) GetWaterSuggestion(ctx context.Context, city string) (suggestion models.WaterSuggestion) {
	defer func() {
		if r := recover(); r != nil {
			err := errors.Errorf("suggestion aborted: %v", r)
			s.l.Error(err, map[string]any{"city": city})
			suggestion = models.ErrorSuggestion(err)
			s.record(suggestion)
		}
	}()

	suggestion, err := s.suggest(ctx, city)
	if err != nil {
		s.l.Warning("failed to build water suggestion", map[string]any{
			"city": city,
			"err":  err.Error(),
		})
		suggestion = models.ErrorSuggestion(err)
	}

	s.record(suggestion)

	return suggestion
}

func (s *WeatherService) suggest(ctx context.Context, city string) (models.WaterSuggestion, error) {
	loc, err := s.geocoder.Geocode(ctx, city)
	if err != nil {
		return models.WaterSuggestion{}, err
	}

	forecast, err := s.forecasts.FetchForecast(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		return models.WaterSuggestion{}, err
	}

	entries := BuildEntries(forecast)
	if len(entries) == 0 {
		return models.WaterSuggestion{}, models.ErrNoForecast
	}

	today := &models.TodayEntry{
		ForecastEntry: entries[0],
		WaterLevel:    ComputeWaterLevel(forecast, 0),
	}

	s.l.Info("water suggestion computed", map[string]any{
		"location":    loc.DisplayName(),
		"water_level": today.Level,
		"reason":      today.Reason,
	})

	return models.WaterSuggestion{
		Status:   models.StatusSuccess,
		Location: loc.DisplayName(),
		Today:    today,
		Next:     entries[1:],
	}, nil
}

// BuildEntries converts up to models.ForecastDays days into display rows.
func BuildEntries(forecast *models.DailyForecast) []models.ForecastEntry {
	n := min(forecast.Days(), models.ForecastDays)
	entries := make([]models.ForecastEntry, 0, n)

	for i := 0; i < n; i++ {
		day := forecast.Day(i)
		entries = append(entries, models.ForecastEntry{
			Date:        day.Date,
			TempMax:     day.TempMax,
			PrecipSum:   day.PrecipSum,
			PrecipProb:  roundPercent(day.PrecipProb),
			WeatherCode: day.WeatherCode,
			Icon:        MapWeatherIcon(day.WeatherCode),
		})
	}

	return entries
}

func (s *WeatherService) record(suggestion models.WaterSuggestion) {
	if s.metrics == nil {
		return
	}
	level := "none"
	if suggestion.Today != nil {
		level = strconv.Itoa(suggestion.Today.Level)
	}
	s.metrics.Suggestions.WithLabelValues(suggestion.Status, level).Inc()
}
