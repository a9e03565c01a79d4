package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

// HTTPClient is the network port used by the provider repositories.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewHTTPClient returns the shared outbound client. A non-positive timeout
// leaves the transport defaults in place.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return &http.Client{}
	}
	return &http.Client{Timeout: timeout}
}

// ClientOptions configures the outbound guards of a provider. A zero value
// disables rate limiting and uses gobreaker defaults.
type ClientOptions struct {
	RequestsPerSecond float64
	Burst             int
	BreakerFailures   uint32
	BreakerOpenFor    time.Duration
	Metrics           *observe.Metrics
}

// jsonGetter performs exactly one GET per call: it waits for the limiter,
// runs the request inside the breaker and decodes the body. It never retries.
type jsonGetter struct {
	name       string
	httpClient HTTPClient
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	metrics    *observe.Metrics
	l          *logger.Logger
}

func newJSONGetter(name string, httpClient HTTPClient, opts ClientOptions, l *logger.Logger) *jsonGetter {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if l == nil {
		l = logger.Nop()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     opts.BreakerOpenFor,
	}
	if opts.BreakerFailures > 0 {
		failures := opts.BreakerFailures
		settings.ReadyToTrip = func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		}
	}

	g := &jsonGetter{
		name:       name,
		httpClient: httpClient,
		breaker:    gobreaker.NewCircuitBreaker(settings),
		metrics:    opts.Metrics,
		l:          l,
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return g
}

// getJSON decodes the response of url into out. Every failure is wrapped in
// models.ErrNetwork and keeps the underlying message.
func (g *jsonGetter) getJSON(ctx context.Context, url string, out any) error {
	started := time.Now()
	err := g.fetch(ctx, url, out)
	g.metrics.ObserveProvider(g.name, started, err)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrNetwork, err)
	}
	return nil
}

func (g *jsonGetter) fetch(ctx context.Context, url string, out any) error {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to do request: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("HTTP error (status %d): %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		return body, nil
	})
	if err != nil {
		g.l.Warning("provider request failed", map[string]any{
			"provider": g.name,
			"err":      err.Error(),
			"breaker":  g.breaker.State().String(),
		})
		return err
	}

	if err = json.Unmarshal(result.([]byte), out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
