package store

import (
	"context"
	"time"
)

func (s *Store) CreateReading(ctx context.Context, r *Reading) error {
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	return translate(s.db.WithContext(ctx).Create(r).Error)
}

// ListReadings returns the plant's readings, newest first.
func (s *Store) ListReadings(ctx context.Context, userID, plantID uint) ([]Reading, error) {
	var out []Reading
	err := s.db.WithContext(ctx).
		Where("user_plant_id = ? AND user_id = ?", plantID, userID).
		Order("date DESC").
		Order("id DESC").
		Find(&out).Error
	return out, err
}
