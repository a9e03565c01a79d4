package observe

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors so they can live on a private registry in tests.
type Metrics struct {
	registry *prometheus.Registry

	ProviderRequests  *prometheus.CounterVec
	ProviderLatency   *prometheus.HistogramVec
	Suggestions       *prometheus.CounterVec
	ChartsRendered    *prometheus.CounterVec
	ReadingsRecorded  prometheus.Counter
	RemindersComputed *prometheus.CounterVec
}

func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Outbound weather provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Outbound weather provider request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		Suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "water_suggestions_total",
			Help:      "Watering suggestions by status and level.",
		}, []string{"status", "level"}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "charts_rendered_total",
			Help:      "Charts rendered by measurement kind and result.",
		}, []string{"kind", "result"}),
		ReadingsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_recorded_total",
			Help:      "Sensor readings saved.",
		}),
		RemindersComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "watering_reminders_total",
			Help:      "Scheduled watering reminders by level.",
		}, []string{"level"}),
	}

	reg.MustRegister(
		m.ProviderRequests,
		m.ProviderLatency,
		m.Suggestions,
		m.ChartsRendered,
		m.ReadingsRecorded,
		m.RemindersComputed,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveProvider records one outbound call.
func (m *Metrics) ObserveProvider(provider string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.ProviderRequests.WithLabelValues(provider, outcome).Inc()
	m.ProviderLatency.WithLabelValues(provider).Observe(time.Since(started).Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
