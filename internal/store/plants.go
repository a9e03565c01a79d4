package store

import (
	"context"

	"gorm.io/gorm"

	"plant-care-api/internal/models"
)

// ListPlants returns the user's plants ordered by label, with their species loaded.
func (s *Store) ListPlants(ctx context.Context, userID uint) ([]UserPlant, error) {
	var out []UserPlant
	err := s.db.WithContext(ctx).
		Preload("Species").
		Where("user_id = ?", userID).
		Order("label").
		Find(&out).Error
	return out, err
}

func (s *Store) CreatePlant(ctx context.Context, p *UserPlant) error {
	return translate(s.db.WithContext(ctx).Omit("Species").Create(p).Error)
}

// GetPlant returns plantID only when it belongs to userID.
func (s *Store) GetPlant(ctx context.Context, userID, plantID uint) (*UserPlant, error) {
	var p UserPlant
	err := s.db.WithContext(ctx).
		Preload("Species").
		Where("id = ? AND user_id = ?", plantID, userID).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// DeletePlant removes the plant and its readings.
func (s *Store) DeletePlant(ctx context.Context, userID, plantID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", plantID, userID).Delete(&UserPlant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return tx.Where("user_plant_id = ? AND user_id = ?", plantID, userID).Delete(&Reading{}).Error
	})
}
