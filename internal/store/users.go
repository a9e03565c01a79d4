package store

import (
	"context"
	"strings"

	"plant-care-api/internal/models"
)

// CreateUser inserts u unless the email or username is already taken.
func (s *Store) CreateUser(ctx context.Context, u *User) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&User{}).
		Where("email = ? OR username = ?", u.Email, u.Username).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrConflict
	}

	return translate(s.db.WithContext(ctx).Create(u).Error)
}

// FindUserByLogin matches identifier against the email (case-insensitive) or the username.
func (s *Store) FindUserByLogin(ctx context.Context, identifier string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).
		Where("email = ? OR username = ?", strings.ToLower(identifier), identifier).
		First(&u).Error
	if err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) GetUser(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *Store) UpdateUserCity(ctx context.Context, id uint, city string) error {
	res := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("city", city)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListUsersWithCity returns every user that has a weather city set.
func (s *Store) ListUsersWithCity(ctx context.Context) ([]User, error) {
	var users []User
	err := s.db.WithContext(ctx).Where("city <> ''").Order("id").Find(&users).Error
	return users, err
}
