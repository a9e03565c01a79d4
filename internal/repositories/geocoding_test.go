package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
)

func TestGeocodingRepository_Geocode_Success(t *testing.T) {
	var gotName, gotCount, gotLanguage, gotFormat string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")
		gotCount = r.URL.Query().Get("count")
		gotLanguage = r.URL.Query().Get("language")
		gotFormat = r.URL.Query().Get("format")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 2745912, "name": "Utrecht", "latitude": 52.0907, "longitude": 5.1214, "country": "Netherlands"},
			{"id": 1, "name": "Utrecht", "latitude": -27.6, "longitude": 30.3, "country": "South Africa"}
		]}`))
	}))
	defer srv.Close()

	repo := NewGeocodingRepository(srv.URL, "", srv.Client(), ClientOptions{}, logger.Nop())

	loc, err := repo.Geocode(context.Background(), "  San José ")
	require.NoError(t, err)

	assert.Equal(t, "San José", gotName)
	assert.Equal(t, "1", gotCount)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, "json", gotFormat)

	assert.Equal(t, models.GeoLocation{Latitude: 52.0907, Longitude: 5.1214, Name: "Utrecht", Country: "Netherlands"}, loc)
	assert.Equal(t, "Utrecht, Netherlands", loc.DisplayName())
}

func TestGeocodingRepository_Geocode_NotFound(t *testing.T) {
	for name, body := range map[string]string{
		"empty results":   `{"results": []}`,
		"missing results": `{"generationtime_ms": 0.4}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			repo := NewGeocodingRepository(srv.URL, "en", srv.Client(), ClientOptions{}, nil)

			_, err := repo.Geocode(context.Background(), "NowhereVille")
			assert.ErrorIs(t, err, models.ErrCityNotFound)
		})
	}
}

func TestGeocodingRepository_Geocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	repo := NewGeocodingRepository(srv.URL, "en", srv.Client(), ClientOptions{}, nil)

	_, err := repo.Geocode(context.Background(), "Utrecht")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNetwork)
	assert.NotErrorIs(t, err, models.ErrCityNotFound)
	assert.Contains(t, err.Error(), "status 503")
}

func TestGeocodingRepository_Name(t *testing.T) {
	repo := NewGeocodingRepository("", "", nil, ClientOptions{}, nil)
	assert.Equal(t, "open-meteo-geocoding", repo.Name())
	assert.Equal(t, GeocodingBaseURL, repo.baseURL)
}
