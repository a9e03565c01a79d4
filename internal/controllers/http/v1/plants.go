package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/internal/models"
	"plant-care-api/internal/services/plants"
)

const plantNotFound = "User plant not found"

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}

// plantErr hides whether a plant exists but belongs to someone else.
func plantErr(err error) error {
	if isNotFound(err) {
		return fiber.NewError(fiber.StatusNotFound, plantNotFound)
	}
	return err
}

// handleListPlants godoc
// @Summary List the user's plants
// @Tags Plants
// @Produce json
// @Security BearerAuth
// @Param lang query string false "Display language (en, it)"
// @Success 200 {array} plants.PlantView
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/plants [get]
func (r *routes) handleListPlants(c *fiber.Ctx) error {
	list, err := r.plants.List(c.UserContext(), userID(c), locale(c))
	if err != nil {
		return err
	}
	return c.JSON(list)
}

// handleCreatePlant godoc
// @Summary Add a plant
// @Tags Plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body plants.NewPlant true "Plant"
// @Success 201 {object} IDResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/plants [post]
func (r *routes) handleCreatePlant(c *fiber.Ctx) error {
	var in plants.NewPlant
	if err := parseBody(c, &in); err != nil {
		return err
	}

	id, err := r.plants.Create(c.UserContext(), userID(c), in)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(IDResponse{Status: statusSuccess, ID: id})
}

// handleDeletePlant godoc
// @Summary Delete a plant and its readings
// @Tags Plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{id} [delete]
func (r *routes) handleDeletePlant(c *fiber.Ctx) error {
	id, err := idParam(c, "plant")
	if err != nil {
		return err
	}

	if err = r.plants.Delete(c.UserContext(), userID(c), id); err != nil {
		return plantErr(err)
	}

	return c.JSON(StatusResponse{Status: statusSuccess})
}

// handlePlantThresholds godoc
// @Summary Acceptable ranges of a plant's species
// @Description Includes the latest reading and its position on the ph and moisture sliders.
// @Tags Plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Success 200 {object} PlantThresholdsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{id}/thresholds [get]
func (r *routes) handlePlantThresholds(c *fiber.Ctx) error {
	id, err := idParam(c, "plant")
	if err != nil {
		return err
	}

	overview, err := r.plants.Thresholds(c.UserContext(), userID(c), id)
	if err != nil {
		return plantErr(err)
	}

	return c.JSON(PlantThresholdsResponse{Status: statusSuccess, PlantOverview: overview})
}

// handleTips godoc
// @Summary Care tips for a plant
// @Tags Plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Param lang query string false "Language (en, it)"
// @Success 200 {object} TipsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{id}/tips [get]
func (r *routes) handleTips(c *fiber.Ctx) error {
	id, err := idParam(c, "plant")
	if err != nil {
		return err
	}

	tips, err := r.plants.CareTips(c.UserContext(), userID(c), id, locale(c))
	if err != nil {
		return plantErr(err)
	}

	return c.JSON(TipsResponse{Status: statusSuccess, Tips: tips})
}

// handleListReadings godoc
// @Summary Readings of a plant, newest first
// @Tags Readings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Success 200 {array} models.Reading
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{id}/readings [get]
func (r *routes) handleListReadings(c *fiber.Ctx) error {
	id, err := idParam(c, "plant")
	if err != nil {
		return err
	}

	list, err := r.readings.List(c.UserContext(), userID(c), id)
	if err != nil {
		return plantErr(err)
	}

	return c.JSON(list)
}

// handleSaveReading godoc
// @Summary Record a sensor reading
// @Tags Readings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body plants.NewReading true "Reading"
// @Success 201 {object} models.Reading
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/readings [post]
func (r *routes) handleSaveReading(c *fiber.Ctx) error {
	var in plants.NewReading
	if err := parseBody(c, &in); err != nil {
		return err
	}

	reading, err := r.readings.Save(c.UserContext(), userID(c), in)
	if err != nil {
		return plantErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(reading)
}

// handleChart godoc
// @Summary Chart spec of a plant's readings
// @Description Returns 204 when no reading carries a value of the requested kind.
// @Tags Readings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Param kind query string true "ph, moisture or fertility" Enums(ph, moisture, fertility)
// @Success 200 {object} chart.Spec
// @Success 204 "Nothing to draw"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/plants/{id}/chart [get]
func (r *routes) handleChart(c *fiber.Ctx) error {
	id, err := idParam(c, "plant")
	if err != nil {
		return err
	}

	kind, err := models.ParseMeasurementKind(c.Query("kind"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	spec, err := r.readings.Chart(c.UserContext(), userID(c), id, kind)
	if err != nil {
		return plantErr(err)
	}
	if spec == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(spec)
}
