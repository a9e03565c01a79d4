package plants

import (
	"context"
	"errors"
	"strings"

	"plant-care-api/internal/models"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/logger"
)

const minSearchLength = 2

type SpeciesStore interface {
	SeedSpecies(ctx context.Context, seed []store.Species) (int, error)
	FindSpeciesByName(ctx context.Context, name string) (*store.Species, error)
	SearchSpecies(ctx context.Context, q string) ([]store.Species, error)
	ListSpecies(ctx context.Context) ([]store.Species, error)
	GetSpecies(ctx context.Context, id uint) (*store.Species, error)
	CreateSpecies(ctx context.Context, sp *store.Species) error
}

type SpeciesView struct {
	ID             uint              `json:"id" example:"1"`
	CommonName     string            `json:"common_name" example:"Basil"`
	ScientificName string            `json:"scientific_name" example:"Ocimum basilicum"`
	DisplayName    string            `json:"display_name" example:"Basilico"`
	Thresholds     models.Thresholds `json:"thresholds"`
}

// SpeciesThresholds is the threshold lookup result for a species or a plant.
type SpeciesThresholds struct {
	SpeciesID      uint              `json:"species_id" example:"1"`
	CommonName     string            `json:"common_name" example:"Basil"`
	ScientificName string            `json:"scientific_name" example:"Ocimum basilicum"`
	Thresholds     models.Thresholds `json:"thresholds"`
}

type NewSpecies struct {
	Name          string   `json:"name" validate:"required,max=120" example:"Rosemary"`
	PHLow         *float64 `json:"ph_low" validate:"omitempty,gte=0,lte=14" example:"6"`
	PHHigh        *float64 `json:"ph_high" validate:"omitempty,gte=0,lte=14" example:"7.5"`
	MoistureDay   *int     `json:"moisture_day" validate:"omitempty,gte=0,lte=100" example:"30"`
	MoistureNight *int     `json:"moisture_night" validate:"omitempty,gte=0,lte=100" example:"45"`
}

var newSpeciesMessages = messages{
	"Name.required": "Name required",
	"Name":          "Name must be at most 120 characters",
	"PHLow":         "ph_low must be between 0 and 14",
	"PHHigh":        "ph_high must be between 0 and 14",
	"MoistureDay":   "moisture_day must be between 0 and 100",
	"MoistureNight": "moisture_night must be between 0 and 100",
}

type SpeciesService struct {
	species SpeciesStore
	l       *logger.Logger
}

func NewSpeciesService(species SpeciesStore, l *logger.Logger) *SpeciesService {
	if l == nil {
		l = logger.Nop()
	}
	return &SpeciesService{species: species, l: l}
}

// Seed inserts the missing DefaultSpecies entries.
func (s *SpeciesService) Seed(ctx context.Context) error {
	inserted, err := s.species.SeedSpecies(ctx, DefaultSpecies)
	if err != nil {
		return err
	}
	s.l.Info("species catalog seeded", map[string]any{"inserted": inserted})
	return nil
}

func (s *SpeciesService) List(ctx context.Context, locale string) ([]SpeciesView, error) {
	rows, err := s.species.ListSpecies(ctx)
	if err != nil {
		return nil, err
	}
	return viewsOf(rows, locale), nil
}

// Search returns nothing for queries shorter than two characters.
func (s *SpeciesService) Search(ctx context.Context, q, locale string) ([]SpeciesView, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < minSearchLength {
		return []SpeciesView{}, nil
	}

	rows, err := s.species.SearchSpecies(ctx, q)
	if err != nil {
		return nil, err
	}
	return viewsOf(rows, locale), nil
}

// Create adds a species unless one with the same name exists already, in
// which case the existing id is returned with existing set.
func (s *SpeciesService) Create(ctx context.Context, in NewSpecies) (id uint, existing bool, err error) {
	in.Name = strings.TrimSpace(in.Name)
	if err = check(in, newSpeciesMessages); err != nil {
		return 0, false, err
	}

	found, err := s.species.FindSpeciesByName(ctx, in.Name)
	switch {
	case err == nil:
		return found.ID, true, nil
	case !errors.Is(err, models.ErrNotFound):
		return 0, false, err
	}

	sp := &store.Species{
		CommonName:          in.Name,
		PHMin:               in.PHLow,
		PHMax:               in.PHHigh,
		SoilMoistureMorning: in.MoistureDay,
		SoilMoistureNight:   in.MoistureNight,
	}
	if err = s.species.CreateSpecies(ctx, sp); err != nil {
		return 0, false, err
	}

	s.l.Info("species created", map[string]any{"species_id": sp.ID, "name": sp.CommonName})

	return sp.ID, false, nil
}

func (s *SpeciesService) Thresholds(ctx context.Context, speciesID uint) (SpeciesThresholds, error) {
	sp, err := s.species.GetSpecies(ctx, speciesID)
	if err != nil {
		return SpeciesThresholds{}, err
	}
	return thresholdsOf(sp), nil
}

func thresholdsOf(sp *store.Species) SpeciesThresholds {
	return SpeciesThresholds{
		SpeciesID:      sp.ID,
		CommonName:     sp.CommonName,
		ScientificName: sp.ScientificName,
		Thresholds:     modelThresholds(sp),
	}
}

func modelThresholds(sp *store.Species) models.Thresholds {
	return models.Thresholds{
		PHMin:           sp.PHMin,
		PHMax:           sp.PHMax,
		MoistureMorning: sp.SoilMoistureMorning,
		MoistureNight:   sp.SoilMoistureNight,
	}
}

func viewsOf(rows []store.Species, locale string) []SpeciesView {
	out := make([]SpeciesView, 0, len(rows))
	for i := range rows {
		out = append(out, SpeciesView{
			ID:             rows[i].ID,
			CommonName:     rows[i].CommonName,
			ScientificName: rows[i].ScientificName,
			DisplayName:    TranslateSpecies(rows[i].CommonName, locale),
			Thresholds:     modelThresholds(&rows[i]),
		})
	}
	return out
}
