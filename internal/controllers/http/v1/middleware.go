package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/internal/services/plants"
)

const claimsKey = "claims"

// authenticate reads the bearer token. With required set a missing or invalid
// token ends the request with 401, otherwise the request goes on anonymously.
func (r *routes) authenticate(required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			if required {
				return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
			}
			return c.Next()
		}

		claims, err := r.accounts.Authenticate(token)
		if err != nil {
			if required {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
			}
			r.l.Debug("ignoring invalid token", map[string]any{"err": err.Error()})
			return c.Next()
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// claimsOf returns nil for anonymous requests.
func claimsOf(c *fiber.Ctx) *plants.Claims {
	claims, _ := c.Locals(claimsKey).(*plants.Claims)
	return claims
}

// userID must only be used behind authenticate(true).
func userID(c *fiber.Ctx) uint {
	if claims := claimsOf(c); claims != nil {
		return claims.UserID
	}
	return 0
}

func idParam(c *fiber.Ctx, what string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+what+" id")
	}
	return uint(id), nil
}

// locale prefers ?lang= over the Accept-Language header.
func locale(c *fiber.Ctx) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return c.AcceptsLanguages("en", "it")
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
