package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// handleWaterSuggestion godoc
// @Summary Watering suggestion for a city
// @Description Uses the city query parameter, then the signed-in user's city, then the configured default.
// @Description Always answers 200; failures are reported with status "error".
// @Tags Weather
// @Produce json
// @Param city query string false "City name" example(Utrecht)
// @Success 200 {object} models.WaterSuggestion
// @Router /api/v1/weather/suggestion [get]
func (r *routes) handleWaterSuggestion(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		city = r.userCity(c)
	}
	if city == "" {
		city = r.defaultCity
	}

	return c.JSON(r.weather.GetWaterSuggestion(c.UserContext(), city))
}

func (r *routes) userCity(c *fiber.Ctx) string {
	claims := claimsOf(c)
	if claims == nil {
		return ""
	}

	profile, err := r.accounts.Me(c.UserContext(), claims.UserID)
	if err != nil {
		r.l.Warning("cannot resolve user city", map[string]any{"user_id": claims.UserID, "err": err.Error()})
		return claims.City
	}
	return profile.City
}
