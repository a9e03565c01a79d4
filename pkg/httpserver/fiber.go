package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"plant-care-api/pkg/logger"
)

const bodyLimit = 1024 * 1024

type Options struct {
	AppName      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ErrorHandler replaces fiber's plain-text default when set.
	ErrorHandler fiber.ErrorHandler
	// Ready backs the readiness probe. The service is always ready when nil.
	Ready  func(c *fiber.Ctx) bool
	Logger *logger.Logger
}

func InitFiberServer(opts Options) *fiber.App {
	cfg := fiber.Config{
		AppName:      opts.AppName,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    bodyLimit,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
	if opts.ErrorHandler != nil {
		cfg.ErrorHandler = opts.ErrorHandler
	}

	s := fiber.New(cfg)

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	s.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.Logger != nil {
		s.Use(RequestLogger(opts.Logger))
	}
	s.Use(cors.New())

	hc := healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}
	if opts.Ready != nil {
		hc.ReadinessProbe = opts.Ready
	}
	s.Use(healthcheck.New(hc))

	return s
}
