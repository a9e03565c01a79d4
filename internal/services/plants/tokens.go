package plants

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"plant-care-api/internal/models"
	"plant-care-api/internal/store"
)

const tokenIssuer = "plant-care-api"

type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	City     string `json:"city,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(u *store.User) (string, time.Time, error) {
	now := t.now().UTC()
	expires := now.Add(t.ttl)

	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		City:     u.City,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies tokenStr. Any failure is reported as models.ErrUnauthorized.
func (t *TokenIssuer) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUnauthorized, err)
	}
	if claims.UserID == 0 {
		return nil, fmt.Errorf("%w: token has no user", models.ErrUnauthorized)
	}
	return claims, nil
}
