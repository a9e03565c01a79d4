package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"

	"plant-care-api/internal/services/plants"
	"plant-care-api/internal/services/weather"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

const defaultSwaggerFile = "docs/swagger.json"

type Services struct {
	Accounts *plants.AccountService
	Species  *plants.SpeciesService
	Plants   *plants.PlantService
	Readings *plants.ReadingService
	Weather  *weather.WeatherService
}

type Options struct {
	// DefaultCity is used for suggestions when neither the query nor the user names a city.
	DefaultCity string
	SwaggerFile string
	Metrics     *observe.Metrics
}

type routes struct {
	accounts    *plants.AccountService
	species     *plants.SpeciesService
	plants      *plants.PlantService
	readings    *plants.ReadingService
	weather     *weather.WeatherService
	defaultCity string
	l           *logger.Logger
}

func NewRouter(
	app *fiber.App,
	services Services,
	opts Options,
	l *logger.Logger,
) {
	r := &routes{
		accounts:    services.Accounts,
		species:     services.Species,
		plants:      services.Plants,
		readings:    services.Readings,
		weather:     services.Weather,
		defaultCity: opts.DefaultCity,
		l:           l,
	}

	swaggerFile := opts.SwaggerFile
	if swaggerFile == "" {
		swaggerFile = defaultSwaggerFile
	}

	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile(swaggerFile)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to read Swagger documentation")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	api := app.Group("/api/v1")
	optional := r.authenticate(false)
	required := r.authenticate(true)

	auth := api.Group("/auth")
	auth.Post("/register", r.handleRegister)
	auth.Post("/login", r.handleLogin)
	auth.Get("/me", optional, r.handleMe)
	auth.Put("/city", required, r.handleSetCity)

	api.Get("/species", r.handleListSpecies)
	api.Get("/species/search", r.handleSearchSpecies)
	api.Get("/species/:id/thresholds", r.handleSpeciesThresholds)
	api.Post("/species", required, r.handleCreateSpecies)

	userPlants := api.Group("/plants", required)
	userPlants.Get("/", r.handleListPlants)
	userPlants.Post("/", r.handleCreatePlant)
	userPlants.Delete("/:id", r.handleDeletePlant)
	userPlants.Get("/:id/readings", r.handleListReadings)
	userPlants.Get("/:id/thresholds", r.handlePlantThresholds)
	userPlants.Get("/:id/chart", r.handleChart)
	userPlants.Get("/:id/tips", r.handleTips)

	api.Post("/readings", required, r.handleSaveReading)

	api.Get("/weather/suggestion", optional, r.handleWaterSuggestion)
}
