package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/config"
	v1 "plant-care-api/internal/controllers/http/v1"
	"plant-care-api/internal/repositories"
	"plant-care-api/internal/scheduler"
	"plant-care-api/internal/services/plants"
	"plant-care-api/internal/services/weather"
	"plant-care-api/internal/store"
	"plant-care-api/pkg/httpserver"
	"plant-care-api/pkg/logger"
	"plant-care-api/pkg/observe"
)

//go:generate swag init -d ../../ -g cmd/plant-care-api/main.go -o ../../docs --outputTypes json

const metricsNamespace = "plantcare"

// @title Plant Care API
// @version 1.0.0
// @description Plant monitoring backend: species catalog, sensor readings, threshold charts
// @description and forecast-based watering suggestions from Open-Meteo.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @tag.name Auth
// @tag.description Accounts and sessions
// @tag.name Species
// @tag.description Species catalog and acceptable ranges
// @tag.name Plants
// @tag.description The user's plants
// @tag.name Readings
// @tag.description Sensor readings and charts
// @tag.name Weather
// @tag.description Watering suggestions
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	writers, sentryHook := logWriters(cnf, os.Stdout)

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Writers: writers,
	})
	sentryHook.SetLogger(l)

	metrics := observe.NewMetrics(metricsNamespace)

	db, err := store.Open(ctx, cnf.Database.Driver, cnf.Database.DSN, cnf.Database.ConnectRetries, l)
	if err != nil {
		l.Error(err, map[string]any{"driver": cnf.Database.Driver})
		os.Exit(1)
	}
	st, err := store.New(db)
	if err != nil {
		l.Error(err, map[string]any{"stage": "migrate"})
		os.Exit(1)
	}

	speciesService := plants.NewSpeciesService(st, l)
	if err = speciesService.Seed(ctx); err != nil {
		l.Error(err, map[string]any{"stage": "seed"})
		os.Exit(1)
	}

	geocoder, forecasts := repositories.InitWeatherRepositories(cnf, metrics, l)
	weatherService := weather.NewWeatherService(geocoder, forecasts, metrics, l)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.Server.ReadTimeout,
		WriteTimeout: cnf.Server.WriteTimeout,
		IdleTimeout:  cnf.Server.IdleTimeout,
		ErrorHandler: v1.ErrorHandler(l),
		Ready: func(c *fiber.Ctx) bool {
			return st.Ping(c.UserContext()) == nil
		},
		Logger: l,
	})

	v1.NewRouter(
		app,
		v1.Services{
			Accounts: plants.NewAccountService(st, plants.NewTokenIssuer(cnf.Auth.JWTSecret, cnf.Auth.TokenTTL), l),
			Species:  speciesService,
			Plants:   plants.NewPlantService(st, l),
			Readings: plants.NewReadingService(st, metrics, l),
			Weather:  weatherService,
		},
		v1.Options{
			DefaultCity: cnf.Weather.DefaultCity,
			Metrics:     metrics,
		},
		l,
	)

	var reminders *scheduler.Scheduler
	if cnf.Reminder.Enabled {
		reminders = scheduler.New(cnf.Reminder.At, st, weatherService, metrics, l)
		if err = reminders.Start(); err != nil {
			l.Error(err, map[string]any{"stage": "scheduler"})
			os.Exit(1)
		}
	}

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"version": cnf.App.Version,
		"db":      cnf.Database.Driver,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if reminders != nil {
			reminders.Stop()
		}
		_ = app.ShutdownWithContext(shutdownCtx)
		_ = st.Close()
		sentryHook.Flush()
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}

// logWriters attaches the Sentry hook outside development only. The hook is
// nil in development so Sentry is never initialised there.
func logWriters(cnf *config.Config, out io.Writer) ([]io.Writer, *observe.SentryHook) {
	if cnf.IsDevelopment() {
		return []io.Writer{out}, nil
	}

	hook := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
	return []io.Writer{out, hook}, hook
}
