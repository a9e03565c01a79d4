package plants

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"plant-care-api/internal/models"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/logger"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *store.User) error
	FindUserByLogin(ctx context.Context, identifier string) (*store.User, error)
	GetUser(ctx context.Context, id uint) (*store.User, error)
	UpdateUserCity(ctx context.Context, id uint, city string) error
}

type Registration struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"ada@example.com"`
	Username string `json:"username" validate:"required,username" example:"ada_l"`
	Password string `json:"password" validate:"required,min=8,bcryptmax" example:"correct-horse"`
	City     string `json:"city" validate:"max=120" example:"Utrecht"`
}

var registrationMessages = messages{
	"Email":              "Invalid email",
	"Username":           "Invalid username (3-30 chars, letters/numbers/underscore)",
	"Password.bcryptmax": "Password must be at most 72 bytes",
	"Password":           "Password must be at least 8 characters",
	"City":               "City must be at most 120 characters",
}

type Credentials struct {
	Identifier string `json:"identifier" validate:"required" example:"ada_l"`
	Password   string `json:"password" validate:"required" example:"correct-horse"`
}

// Profile is what the client knows about the signed-in user.
type Profile struct {
	Authenticated bool   `json:"authenticated"`
	ID            uint   `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
	Username      string `json:"username,omitempty"`
	City          string `json:"city,omitempty"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Profile
}

// ErrInvalidCredentials is returned for an unknown identifier or a wrong password alike.
var ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)

type AccountService struct {
	users  UserStore
	tokens *TokenIssuer
	l      *logger.Logger
}

func NewAccountService(users UserStore, tokens *TokenIssuer, l *logger.Logger) *AccountService {
	if l == nil {
		l = logger.Nop()
	}
	return &AccountService{users: users, tokens: tokens, l: l}
}

// Register creates an account. The email is stored lower-cased.
func (s *AccountService) Register(ctx context.Context, in Registration) (Profile, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	in.City = strings.TrimSpace(in.City)

	if err := check(in, registrationMessages); err != nil {
		return Profile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, err
	}

	u := &store.User{Email: in.Email, Username: in.Username, PasswordHash: string(hash), City: in.City}
	if err = s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return Profile{}, models.NewValidationError("Email or username already registered")
		}
		return Profile{}, err
	}

	s.l.Info("user registered", map[string]any{"user_id": u.ID})

	return profileOf(u), nil
}

// Login accepts either the email or the username as identifier.
func (s *AccountService) Login(ctx context.Context, in Credentials) (Session, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	if err := check(in, messages{"Identifier": "Missing identifier or password", "Password": "Missing identifier or password"}); err != nil {
		return Session{}, err
	}

	u, err := s.users.FindUserByLogin(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: expires, Profile: profileOf(u)}, nil
}

// Authenticate resolves a bearer token to its claims.
func (s *AccountService) Authenticate(token string) (*Claims, error) {
	return s.tokens.Parse(token)
}

func (s *AccountService) Me(ctx context.Context, userID uint) (Profile, error) {
	u, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return Profile{}, models.ErrUnauthorized
		}
		return Profile{}, err
	}
	return profileOf(u), nil
}

func (s *AccountService) SetCity(ctx context.Context, userID uint, city string) (Profile, error) {
	city = strings.TrimSpace(city)
	if city == "" || len(city) > 120 {
		return Profile{}, models.NewValidationError("City must be 1-120 characters")
	}

	if err := s.users.UpdateUserCity(ctx, userID, city); err != nil {
		return Profile{}, err
	}

	return s.Me(ctx, userID)
}

func profileOf(u *store.User) Profile {
	return Profile{Authenticated: true, ID: u.ID, Email: u.Email, Username: u.Username, City: u.City}
}
