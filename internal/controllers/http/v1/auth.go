package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/internal/services/plants"
)

// handleRegister godoc
// @Summary Register an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body plants.Registration true "New account"
// @Success 201 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse "Invalid input or already registered"
// @Router /api/v1/auth/register [post]
func (r *routes) handleRegister(c *fiber.Ctx) error {
	var in plants.Registration
	if err := parseBody(c, &in); err != nil {
		return err
	}

	profile, err := r.accounts.Register(c.UserContext(), in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(ProfileResponse{Status: statusSuccess, Profile: profile})
}

// handleLogin godoc
// @Summary Log in with email or username
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body plants.Credentials true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (r *routes) handleLogin(c *fiber.Ctx) error {
	var in plants.Credentials
	if err := parseBody(c, &in); err != nil {
		return err
	}

	session, err := r.accounts.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, plants.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	return c.JSON(SessionResponse{Status: statusSuccess, Session: session})
}

// handleMe godoc
// @Summary Current user
// @Description Anonymous callers get authenticated=false.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ProfileResponse
// @Router /api/v1/auth/me [get]
func (r *routes) handleMe(c *fiber.Ctx) error {
	claims := claimsOf(c)
	if claims == nil {
		return c.JSON(ProfileResponse{Status: statusSuccess})
	}

	profile, err := r.accounts.Me(c.UserContext(), claims.UserID)
	if err != nil {
		return err
	}

	return c.JSON(ProfileResponse{Status: statusSuccess, Profile: profile})
}

// handleSetCity godoc
// @Summary Set the city used for watering suggestions
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CityRequest true "City"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/city [put]
func (r *routes) handleSetCity(c *fiber.Ctx) error {
	var in CityRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}

	profile, err := r.accounts.SetCity(c.UserContext(), userID(c), in.City)
	if err != nil {
		return err
	}

	return c.JSON(ProfileResponse{Status: statusSuccess, Profile: profile})
}
