package store

import (
	"context"
	"errors"
	"strings"

	"plant-care-api/internal/models"
)

const searchLimit = 50

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// SeedSpecies inserts every entry whose common name is not present yet,
// compared case-insensitively. It returns the number of inserted rows.
func (s *Store) SeedSpecies(ctx context.Context, seed []Species) (int, error) {
	inserted := 0
	for i := range seed {
		if _, err := s.FindSpeciesByName(ctx, seed[i].CommonName); err == nil {
			continue
		} else if !errors.Is(err, models.ErrNotFound) {
			return inserted, err
		}

		sp := seed[i]
		sp.ID = 0
		if err := s.db.WithContext(ctx).Create(&sp).Error; err != nil {
			return inserted, translate(err)
		}
		inserted++
	}
	return inserted, nil
}

func (s *Store) FindSpeciesByName(ctx context.Context, name string) (*Species, error) {
	var sp Species
	err := s.db.WithContext(ctx).
		Where("lower(common_name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&sp).Error
	if err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

// SearchSpecies matches q literally against common and scientific names.
func (s *Store) SearchSpecies(ctx context.Context, q string) ([]Species, error) {
	like := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"

	var out []Species
	err := s.db.WithContext(ctx).
		Where(`lower(common_name) LIKE ? ESCAPE '\' OR lower(scientific_name) LIKE ? ESCAPE '\'`, like, like).
		Order("common_name").
		Limit(searchLimit).
		Find(&out).Error
	return out, err
}

func (s *Store) ListSpecies(ctx context.Context) ([]Species, error) {
	var out []Species
	err := s.db.WithContext(ctx).Order("common_name").Find(&out).Error
	return out, err
}

func (s *Store) GetSpecies(ctx context.Context, id uint) (*Species, error) {
	var sp Species
	if err := s.db.WithContext(ctx).First(&sp, id).Error; err != nil {
		return nil, translate(err)
	}
	return &sp, nil
}

func (s *Store) CreateSpecies(ctx context.Context, sp *Species) error {
	return translate(s.db.WithContext(ctx).Create(sp).Error)
}
