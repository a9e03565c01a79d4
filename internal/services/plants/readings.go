package plants

import (
	"context"
	"encoding/json"
	"time"

	"plant-care-api/internal/models"
	"plant-care-api/internal/services/chart"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

type ReadingStore interface {
	GetPlant(ctx context.Context, userID, plantID uint) (*store.UserPlant, error)
	CreateReading(ctx context.Context, r *store.Reading) error
	ListReadings(ctx context.Context, userID, plantID uint) ([]store.Reading, error)
}

type NewReading struct {
	PlantID   uint       `json:"user_plant_id" validate:"required" example:"3"`
	PH        *float64   `json:"ph" validate:"omitempty,gte=0,lte=14" example:"6.4"`
	Moisture  *int       `json:"moisture" validate:"omitempty,gte=0,lte=100" example:"68"`
	Fertility *int       `json:"fertility" validate:"omitempty,oneof=0 1 2" example:"1"`
	Date      *time.Time `json:"date,omitempty" example:"2025-08-22T07:30:00Z"`
}

var newReadingMessages = messages{
	"PlantID":   "Missing fields",
	"PH":        "ph must be between 0 and 14",
	"Moisture":  "moisture must be between 0 and 100",
	"Fertility": "fertility must be 0 (low), 1 (normal) or 2 (high)",
}

type ReadingService struct {
	readings ReadingStore
	metrics  *observe.Metrics
	l        *logger.Logger
}

func NewReadingService(readings ReadingStore, metrics *observe.Metrics, l *logger.Logger) *ReadingService {
	if l == nil {
		l = logger.Nop()
	}
	return &ReadingService{readings: readings, metrics: metrics, l: l}
}

// Save stores a reading for one of the user's plants. At least one value is required.
func (s *ReadingService) Save(ctx context.Context, userID uint, in NewReading) (models.Reading, error) {
	if err := check(in, newReadingMessages); err != nil {
		return models.Reading{}, err
	}
	if in.PH == nil && in.Moisture == nil && in.Fertility == nil {
		return models.Reading{}, models.NewValidationError("At least one of ph, moisture or fertility is required")
	}

	if _, err := s.readings.GetPlant(ctx, userID, in.PlantID); err != nil {
		return models.Reading{}, err
	}

	r := &store.Reading{
		UserID:      userID,
		UserPlantID: in.PlantID,
		PH:          in.PH,
		Moisture:    in.Moisture,
		Fertility:   in.Fertility,
	}
	if in.Date != nil {
		r.Date = in.Date.UTC()
	}

	if err := s.readings.CreateReading(ctx, r); err != nil {
		return models.Reading{}, err
	}

	if s.metrics != nil {
		s.metrics.ReadingsRecorded.Inc()
	}

	return readingOf(*r), nil
}

// List returns the plant's readings, newest first.
func (s *ReadingService) List(ctx context.Context, userID, plantID uint) ([]models.Reading, error) {
	if _, err := s.readings.GetPlant(ctx, userID, plantID); err != nil {
		return nil, err
	}

	rows, err := s.readings.ListReadings(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Reading, 0, len(rows))
	for _, r := range rows {
		out = append(out, readingOf(r))
	}
	return out, nil
}

// Chart renders the plant's readings of kind against its species thresholds.
// A nil spec means there is nothing to draw.
func (s *ReadingService) Chart(ctx context.Context, userID, plantID uint, kind models.MeasurementKind) (json.RawMessage, error) {
	p, err := s.readings.GetPlant(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}

	rows, err := s.readings.ListReadings(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}

	readings := make([]models.Reading, 0, len(rows))
	for _, r := range rows {
		readings = append(readings, readingOf(r))
	}

	thresholds := modelThresholds(&p.Species)
	surface := chart.NewSpecSurface()
	renderer := chart.NewRenderer(surface, s.metrics)

	c, err := renderer.Render(kind, readings, &thresholds)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	return surface.Spec(), nil
}

func readingOf(r store.Reading) models.Reading {
	return models.Reading{
		ID:        r.ID,
		PlantID:   r.UserPlantID,
		Date:      r.Date,
		PH:        r.PH,
		Moisture:  r.Moisture,
		Fertility: r.Fertility,
	}
}
