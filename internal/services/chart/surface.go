package chart

import (
	"encoding/json"
	"sync"
)

// lineDash is the dash pattern of the threshold guide lines.
var lineDash = []int{6, 6}

// Spec is the line-chart document the web front end draws.
type Spec struct {
	Type           string          `json:"type"`
	Labels         []string        `json:"labels"`
	Dataset        Dataset         `json:"dataset"`
	ReferenceLines []SpecGuideLine `json:"reference_lines"`
	YAxis          YAxis           `json:"y_axis"`
}

type Dataset struct {
	Label       string    `json:"label"`
	Data        []float64 `json:"data"`
	BorderColor string    `json:"border_color"`
	Tension     float64   `json:"tension"`
	PointRadius int       `json:"point_radius"`
}

type SpecGuideLine struct {
	ReferenceLine
	Width int   `json:"width"`
	Dash  []int `json:"dash"`
}

// SpecSurface materialises drawn charts as JSON specs. Destroying the
// instance clears the surface.
type SpecSurface struct {
	mu   sync.Mutex
	spec json.RawMessage
	gen  uint64
}

func NewSpecSurface() *SpecSurface {
	return &SpecSurface{}
}

func (s *SpecSurface) Draw(c *Chart) (Instance, error) {
	lines := make([]SpecGuideLine, 0, len(c.ReferenceLines))
	for _, l := range c.ReferenceLines {
		lines = append(lines, SpecGuideLine{ReferenceLine: l, Width: 2, Dash: lineDash})
	}

	raw, err := json.Marshal(Spec{
		Type:   "line",
		Labels: c.Series.Labels,
		Dataset: Dataset{
			Label:       c.Label,
			Data:        c.Series.Values,
			BorderColor: c.Color,
			Tension:     0.3,
			PointRadius: 5,
		},
		ReferenceLines: lines,
		YAxis:          c.YAxis,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.spec = raw

	return &specInstance{surface: s, gen: s.gen}, nil
}

// Spec returns the currently drawn document, or nil when nothing is drawn.
func (s *SpecSurface) Spec() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.spec
}

type specInstance struct {
	surface *SpecSurface
	gen     uint64
}

// Destroy clears the surface unless a newer chart has replaced this one.
func (i *specInstance) Destroy() {
	s := i.surface
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen == i.gen {
		s.spec = nil
	}
}
