package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	App      AppConfig      `yaml:"app" envconfig:"APP"`
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Log      LogConfig      `yaml:"log" envconfig:"LOG"`
	Weather  WeatherConfig  `yaml:"weather" envconfig:"WEATHER"`
	Database DatabaseConfig `yaml:"database" envconfig:"DB"`
	Auth     AuthConfig     `yaml:"auth" envconfig:"AUTH"`
	Sentry   SentryConfig   `yaml:"sentry" envconfig:"SENTRY"`
	Reminder ReminderConfig `yaml:"reminder" envconfig:"REMINDER"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
}

// WeatherConfig describes the Open-Meteo endpoints and the outbound client guards.
type WeatherConfig struct {
	GeocodingURL      string        `yaml:"geocoding_url" envconfig:"GEOCODING_URL"`
	ForecastURL       string        `yaml:"forecast_url" envconfig:"FORECAST_URL"`
	Language          string        `yaml:"language" envconfig:"LANGUAGE"`
	DefaultCity       string        `yaml:"default_city" envconfig:"DEFAULT_CITY"`
	Timeout           time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
	RequestsPerSecond float64       `yaml:"requests_per_second" envconfig:"RPS"`
	Burst             int           `yaml:"burst" envconfig:"BURST"`
	BreakerFailures   uint32        `yaml:"breaker_failures" envconfig:"BREAKER_FAILURES"`
	BreakerOpenFor    time.Duration `yaml:"breaker_open_for" envconfig:"BREAKER_OPEN_FOR"`
}

type DatabaseConfig struct {
	Driver         string `yaml:"driver" envconfig:"DRIVER"`
	DSN            string `yaml:"dsn" envconfig:"DSN"`
	ConnectRetries int    `yaml:"connect_retries" envconfig:"CONNECT_RETRIES"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl" envconfig:"TOKEN_TTL"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

type ReminderConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"ENABLED"`
	At      string `yaml:"at" envconfig:"AT"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads an optional YAML file, then an optional .env file,
// and finally lets environment variables override both.
type FileConfigProvider struct {
	path string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{path: path}
}

// Default returns the configuration used when neither file nor environment set a value.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "plant-care-api",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Weather: WeatherConfig{
			GeocodingURL:      "https://geocoding-api.open-meteo.com/v1/search",
			ForecastURL:       "https://api.open-meteo.com/v1/forecast",
			Language:          "en",
			DefaultCity:       "Utrecht",
			Timeout:           10 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
			BreakerFailures:   5,
			BreakerOpenFor:    30 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:         "sqlite",
			DSN:            "data/plants.sqlite",
			ConnectRetries: 5,
		},
		Auth: AuthConfig{
			JWTSecret: "change-me",
			TokenTTL:  24 * time.Hour,
		},
		Reminder: ReminderConfig{
			Enabled: false,
			At:      "07:00",
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// a missing .env is normal outside local development
	_ = godotenv.Load()

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	switch {
	case strings.TrimSpace(cnf.App.Name) == "":
		return errors.New("app.name is required")
	case strings.TrimSpace(cnf.Server.Port) == "":
		return errors.New("server.port is required")
	case cnf.Weather.GeocodingURL == "":
		return errors.New("weather.geocoding_url is required")
	case cnf.Weather.ForecastURL == "":
		return errors.New("weather.forecast_url is required")
	case cnf.Weather.Timeout <= 0:
		return errors.New("weather.timeout must be positive")
	case cnf.Weather.RequestsPerSecond <= 0 || cnf.Weather.Burst <= 0:
		return errors.New("weather.requests_per_second and weather.burst must be positive")
	case cnf.Database.Driver != "sqlite" && cnf.Database.Driver != "postgres":
		return fmt.Errorf("database.driver %q is not supported", cnf.Database.Driver)
	case cnf.Database.DSN == "":
		return errors.New("database.dsn is required")
	case cnf.Auth.JWTSecret == "":
		return errors.New("auth.jwt_secret is required")
	case cnf.Auth.TokenTTL <= 0:
		return errors.New("auth.token_ttl must be positive")
	}

	if cnf.Reminder.Enabled {
		if _, err := time.Parse("15:04", cnf.Reminder.At); err != nil {
			return fmt.Errorf("reminder.at must be HH:MM: %w", err)
		}
	}

	return nil
}

// NewConfig loads the configuration from config/config.yaml and the environment.
func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, err
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cnf, nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}
