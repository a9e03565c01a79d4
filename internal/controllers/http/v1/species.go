package http

import (
	"github.com/gofiber/fiber/v2"

	"plant-care-api/internal/services/plants"
)

// handleListSpecies godoc
// @Summary List the species catalog
// @Tags Species
// @Produce json
// @Param lang query string false "Display language (en, it)"
// @Success 200 {array} plants.SpeciesView
// @Router /api/v1/species [get]
func (r *routes) handleListSpecies(c *fiber.Ctx) error {
	list, err := r.species.List(c.UserContext(), locale(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// handleSearchSpecies godoc
// @Summary Search species by common or scientific name
// @Description Queries shorter than two characters return an empty list.
// @Tags Species
// @Produce json
// @Param q query string true "Search text" example(basil)
// @Param lang query string false "Display language (en, it)"
// @Success 200 {array} plants.SpeciesView
// @Router /api/v1/species/search [get]
func (r *routes) handleSearchSpecies(c *fiber.Ctx) error {
	list, err := r.species.Search(c.UserContext(), c.Query("q"), locale(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// handleCreateSpecies godoc
// @Summary Add a species
// @Description An existing species with the same name is returned instead of a duplicate.
// @Tags Species
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body plants.NewSpecies true "Species"
// @Success 200 {object} IDResponse "Already present"
// @Success 201 {object} IDResponse "Created"
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/species [post]
func (r *routes) handleCreateSpecies(c *fiber.Ctx) error {
	var in plants.NewSpecies
	if err := parseBody(c, &in); err != nil {
		return err
	}

	id, existing, err := r.species.Create(c.UserContext(), in)
	if err != nil {
		return err
	}

	status := fiber.StatusCreated
	if existing {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(IDResponse{Status: statusSuccess, ID: id, Existing: existing})
}

// handleSpeciesThresholds godoc
// @Summary Acceptable ranges of a species
// @Tags Species
// @Produce json
// @Param id path int true "Species id"
// @Success 200 {object} ThresholdsResponse
// @Failure 404 {object} ErrorResponse "Species not found"
// @Router /api/v1/species/{id}/thresholds [get]
func (r *routes) handleSpeciesThresholds(c *fiber.Ctx) error {
	id, err := idParam(c, "species")
	if err != nil {
		return err
	}

	th, err := r.species.Thresholds(c.UserContext(), id)
	if err != nil {
		if isNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "Species not found")
		}
		return err
	}

	return c.JSON(ThresholdsResponse{Status: statusSuccess, SpeciesThresholds: th})
}
