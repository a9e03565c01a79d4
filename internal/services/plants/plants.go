package plants

import (
	"context"
	"errors"
	"strings"

	"plant-care-api/internal/models"
	"plant-care-api/internal/services/chart"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/logger"
)

// Slider scales of the plant overview.
const (
	phScaleMin       = 0
	phScaleMax       = 14
	moistureScaleMin = 0
	moistureScaleMax = 100
)

type PlantStore interface {
	ListPlants(ctx context.Context, userID uint) ([]store.UserPlant, error)
	CreatePlant(ctx context.Context, p *store.UserPlant) error
	GetPlant(ctx context.Context, userID, plantID uint) (*store.UserPlant, error)
	DeletePlant(ctx context.Context, userID, plantID uint) error
	GetSpecies(ctx context.Context, id uint) (*store.Species, error)
	ListReadings(ctx context.Context, userID, plantID uint) ([]store.Reading, error)
}

type PlantView struct {
	ID          uint   `json:"id" example:"3"`
	Label       string `json:"label" example:"Kitchen basil"`
	Species     string `json:"species" example:"Basil"`
	SpeciesID   uint   `json:"species_id" example:"1"`
	DisplayName string `json:"display_name" example:"Basilico"`
}

type NewPlant struct {
	SpeciesID uint   `json:"species_id" validate:"required" example:"1"`
	Label     string `json:"label" validate:"required,max=120" example:"Kitchen basil"`
}

var newPlantMessages = messages{
	"SpeciesID":      "Missing fields",
	"Label.required": "Missing fields",
	"Label":          "Label must be at most 120 characters",
}

// PlantOverview is the threshold lookup of a plant together with where its
// latest reading sits inside the acceptable ranges.
type PlantOverview struct {
	SpeciesThresholds
	Latest     *models.Reading           `json:"latest,omitempty"`
	Indicators map[string]RangeIndicator `json:"indicators,omitempty"`
}

type PlantService struct {
	plants PlantStore
	l      *logger.Logger
}

func NewPlantService(plants PlantStore, l *logger.Logger) *PlantService {
	if l == nil {
		l = logger.Nop()
	}
	return &PlantService{plants: plants, l: l}
}

func (s *PlantService) List(ctx context.Context, userID uint, locale string) ([]PlantView, error) {
	rows, err := s.plants.ListPlants(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]PlantView, 0, len(rows))
	for _, p := range rows {
		out = append(out, PlantView{
			ID:          p.ID,
			Label:       p.Label,
			Species:     p.Species.CommonName,
			SpeciesID:   p.SpeciesID,
			DisplayName: TranslateSpecies(p.Species.CommonName, locale),
		})
	}
	return out, nil
}

// Create registers a plant for userID. The species must exist.
func (s *PlantService) Create(ctx context.Context, userID uint, in NewPlant) (uint, error) {
	in.Label = strings.TrimSpace(in.Label)
	if err := check(in, newPlantMessages); err != nil {
		return 0, err
	}

	if _, err := s.plants.GetSpecies(ctx, in.SpeciesID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, models.NewValidationError("Species not found")
		}
		return 0, err
	}

	p := &store.UserPlant{UserID: userID, SpeciesID: in.SpeciesID, Label: in.Label}
	if err := s.plants.CreatePlant(ctx, p); err != nil {
		return 0, err
	}

	s.l.Info("plant created", map[string]any{"user_id": userID, "plant_id": p.ID})

	return p.ID, nil
}

func (s *PlantService) Delete(ctx context.Context, userID, plantID uint) error {
	return s.plants.DeletePlant(ctx, userID, plantID)
}

// Thresholds resolves the species of the user's plant.
func (s *PlantService) Thresholds(ctx context.Context, userID, plantID uint) (PlantOverview, error) {
	p, err := s.plants.GetPlant(ctx, userID, plantID)
	if err != nil {
		return PlantOverview{}, err
	}

	overview := PlantOverview{SpeciesThresholds: thresholdsOf(&p.Species)}

	readings, err := s.plants.ListReadings(ctx, userID, plantID)
	if err != nil {
		return PlantOverview{}, err
	}
	if len(readings) == 0 {
		return overview, nil
	}

	latest := readingOf(readings[0])
	overview.Latest = &latest
	overview.Indicators = indicatorsFor(latest, &overview.Thresholds)

	return overview, nil
}

// CareTips returns the tips of the plant's species.
func (s *PlantService) CareTips(ctx context.Context, userID, plantID uint, locale string) ([]string, error) {
	p, err := s.plants.GetPlant(ctx, userID, plantID)
	if err != nil {
		return nil, err
	}
	return CareTips(p.Species.CommonName, locale), nil
}

func indicatorsFor(r models.Reading, t *models.Thresholds) map[string]RangeIndicator {
	out := map[string]RangeIndicator{}
	if r.PH != nil {
		out[string(models.KindPH)] = NewRangeIndicator(chart.ResolvePHMin(t), chart.ResolvePHMax(t), phScaleMin, phScaleMax, *r.PH)
	}
	if r.Moisture != nil {
		out[string(models.KindMoisture)] = NewRangeIndicator(chart.ResolveMoistureLow(t), chart.ResolveMoistureHigh(t), moistureScaleMin, moistureScaleMax, float64(*r.Moisture))
	}
	return out
}
