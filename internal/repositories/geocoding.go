package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
)

const (
	GeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultLanguage  = "en"
)

type GeocodingRepository struct {
	baseURL  string
	language string
	getter   *jsonGetter
	l        *logger.Logger
}

func NewGeocodingRepository(baseURL, language string, httpClient HTTPClient, opts ClientOptions, l *logger.Logger) *GeocodingRepository {
	if baseURL == "" {
		baseURL = GeocodingBaseURL
	}
	if language == "" {
		language = defaultLanguage
	}
	if l == nil {
		l = logger.Nop()
	}

	return &GeocodingRepository{
		baseURL:  baseURL,
		language: language,
		getter:   newJSONGetter("open-meteo-geocoding", httpClient, opts, l),
		l:        l,
	}
}

func (g *GeocodingRepository) Name() string {
	return "open-meteo-geocoding"
}

type geocodingResponse struct {
	Results []models.GeoLocation `json:"results"`
}

// Geocode returns the first match for city. Only one result is requested.
func (g *GeocodingRepository) Geocode(ctx context.Context, city string) (models.GeoLocation, error) {
	params := url.Values{}
	params.Set("name", strings.TrimSpace(city))
	params.Set("count", "1")
	params.Set("language", g.language)
	params.Set("format", "json")

	g.l.Debug("making geocoding request", map[string]any{"city": city})

	var response geocodingResponse
	if err := g.getter.getJSON(ctx, fmt.Sprintf("%s?%s", g.baseURL, params.Encode()), &response); err != nil {
		return models.GeoLocation{}, err
	}

	if len(response.Results) == 0 {
		return models.GeoLocation{}, models.ErrCityNotFound
	}

	return response.Results[0], nil
}
