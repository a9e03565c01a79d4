package chart

import (
	"fmt"
	"sync"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/observe"
)

const (
	AxisLinear  = "linear"
	AxisOrdinal = "ordinal"

	lineColor = "#47b8db"
)

type Tick struct {
	Value float64 `json:"value" example:"1"`
	Label string  `json:"label" example:"Normal"`
}

type YAxis struct {
	Type  string  `json:"type" example:"linear"`
	Min   float64 `json:"min" example:"3"`
	Max   float64 `json:"max" example:"10"`
	Ticks []Tick  `json:"ticks,omitempty"`
}

// Chart is everything a surface needs to draw one measurement series.
type Chart struct {
	Kind           models.MeasurementKind `json:"kind" example:"ph"`
	Label          string                 `json:"label" example:"pH Level"`
	Color          string                 `json:"color" example:"#47b8db"`
	Series         Series                 `json:"series"`
	ReferenceLines []ReferenceLine        `json:"reference_lines"`
	YAxis          YAxis                  `json:"y_axis"`
}

// Instance is a drawn chart owned by a Renderer.
type Instance interface {
	Destroy()
}

// Surface draws charts. A surface holds at most one live instance per renderer.
type Surface interface {
	Draw(c *Chart) (Instance, error)
}

// Renderer owns the current chart instance of one surface. Every Render
// destroys the previous instance before drawing a new one.
type Renderer struct {
	mu      sync.Mutex
	surface Surface
	current Instance
	metrics *observe.Metrics
}

func NewRenderer(surface Surface, metrics *observe.Metrics) *Renderer {
	return &Renderer{surface: surface, metrics: metrics}
}

// Render draws readings of kind. When there is nothing to plot no instance is
// left on the surface and (nil, nil) is returned.
func (r *Renderer) Render(kind models.MeasurementKind, readings []models.Reading, thresholds *models.Thresholds) (*Chart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teardown()

	series := PrepareSeries(kind, readings)
	if series.Len() == 0 {
		r.record(kind, "empty")
		return nil, nil
	}

	c := &Chart{
		Kind:           kind,
		Label:          seriesLabel(kind),
		Color:          lineColor,
		Series:         series,
		ReferenceLines: SelectReferenceLines(kind, thresholds),
		YAxis:          axisFor(kind),
	}

	instance, err := r.surface.Draw(c)
	if err != nil {
		r.record(kind, "error")
		return nil, fmt.Errorf("draw %s chart: %w", kind, err)
	}

	r.current = instance
	r.record(kind, "drawn")

	return c, nil
}

// Teardown destroys the current instance, if any. Safe to call repeatedly.
func (r *Renderer) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teardown()
}

// Active reports whether the renderer currently owns a drawn instance.
func (r *Renderer) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current != nil
}

func (r *Renderer) teardown() {
	if r.current == nil {
		return
	}
	r.current.Destroy()
	r.current = nil
}

func (r *Renderer) record(kind models.MeasurementKind, result string) {
	if r.metrics == nil {
		return
	}
	r.metrics.ChartsRendered.WithLabelValues(string(kind), result).Inc()
}

func axisFor(kind models.MeasurementKind) YAxis {
	switch kind {
	case models.KindPH:
		return YAxis{Type: AxisLinear, Min: 3, Max: 10}
	case models.KindFertility:
		return YAxis{
			Type: AxisOrdinal,
			Min:  -0.1,
			Max:  2.1,
			Ticks: []Tick{
				{Value: models.FertilityLow, Label: FertilityLabel(models.FertilityLow)},
				{Value: models.FertilityNormal, Label: FertilityLabel(models.FertilityNormal)},
				{Value: models.FertilityHigh, Label: FertilityLabel(models.FertilityHigh)},
			},
		}
	default:
		return YAxis{Type: AxisLinear, Min: 0, Max: 100}
	}
}

func seriesLabel(kind models.MeasurementKind) string {
	switch kind {
	case models.KindPH:
		return "pH Level"
	case models.KindMoisture:
		return "Moisture Level (%)"
	default:
		return "Fertility"
	}
}

// FertilityLabel names an ordinal fertility value. Unknown values yield "".
func FertilityLabel(v int) string {
	switch v {
	case models.FertilityLow:
		return "Low"
	case models.FertilityNormal:
		return "Normal"
	case models.FertilityHigh:
		return "High"
	}
	return ""
}
