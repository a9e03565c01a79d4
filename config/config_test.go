package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)
	assert.NotNil(t, config)

	assert.Equal(t, "plant-care-api", config.App.Name)
	assert.Equal(t, "1.0.0", config.App.Version)
	assert.Equal(t, "development", config.App.Env)
	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, 10*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, config.Server.IdleTimeout)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "Utrecht", config.Weather.DefaultCity)
	assert.Equal(t, "en", config.Weather.Language)
	assert.Equal(t, "sqlite", config.Database.Driver)
	assert.False(t, config.Reminder.Enabled)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "2.0.0")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WEATHER_DEFAULT_CITY", "Milano")
	t.Setenv("WEATHER_TIMEOUT", "3s")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "host=localhost user=plants dbname=plants")

	provider := NewFileConfigProvider("nonexistent.yaml")
	config, err := NewConfigWithProvider(provider)
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.App.Name)
	assert.Equal(t, "2.0.0", config.App.Version)
	assert.Equal(t, "production", config.App.Env)
	assert.Equal(t, "9090", config.Server.Port)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "Milano", config.Weather.DefaultCity)
	assert.Equal(t, 3*time.Second, config.Weather.Timeout)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.True(t, config.IsProduction())
}

func TestFileConfigProvider_LoadFromFile(t *testing.T) {
	provider := NewFileConfigProvider("nonexistent.yaml")
	config := &Config{}

	// Test loading from non-existent file (should not error)
	err := provider.loadFromFile(config)
	assert.NoError(t, err)
}

func TestFileConfigProvider_YAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlData := []byte(`
app:
  name: from-file
weather:
  default_city: Roma
  timeout: 4s
reminder:
  enabled: true
  at: "06:30"
`)
	require.NoError(t, os.WriteFile(path, yamlData, 0o600))
	t.Setenv("WEATHER_DEFAULT_CITY", "Torino")

	config, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.NoError(t, err)

	assert.Equal(t, "from-file", config.App.Name)
	assert.Equal(t, "Torino", config.Weather.DefaultCity)
	assert.Equal(t, 4*time.Second, config.Weather.Timeout)
	assert.True(t, config.Reminder.Enabled)
	assert.Equal(t, "06:30", config.Reminder.At)
	// untouched sections keep their defaults
	assert.Equal(t, "8080", config.Server.Port)
}

func TestFileConfigProvider_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app: [unclosed"), 0o600))

	_, err := NewConfigWithProvider(NewFileConfigProvider(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestConfigValidation(t *testing.T) {
	provider := NewFileConfigProvider("config/config.yaml")

	assert.NoError(t, provider.Validate(Default()))

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name is required"},
		{"missing port", func(c *Config) { c.Server.Port = " " }, "server.port is required"},
		{"zero timeout", func(c *Config) { c.Weather.Timeout = 0 }, "weather.timeout must be positive"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "not supported"},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, "auth.jwt_secret is required"},
		{"bad reminder time", func(c *Config) {
			c.Reminder.Enabled = true
			c.Reminder.At = "7am"
		}, "reminder.at must be HH:MM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := provider.Validate(c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigHelperMethods(t *testing.T) {
	config := &Config{App: AppConfig{Env: "development"}}

	assert.True(t, config.IsDevelopment())
	assert.False(t, config.IsProduction())
}

func TestNewConfigWithProvider(t *testing.T) {
	mockProvider := &MockConfigProvider{config: Default()}
	mockProvider.config.App.Name = "test-app"

	config, err := NewConfigWithProvider(mockProvider)
	require.NoError(t, err)
	assert.Equal(t, "test-app", config.App.Name)

	failing := &MockConfigProvider{err: errors.New("boom")}
	_, err = NewConfigWithProvider(failing)
	assert.EqualError(t, err, "boom")
}

// MockConfigProvider for testing
type MockConfigProvider struct {
	config *Config
	err    error
}

func (m *MockConfigProvider) Load() (*Config, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.config, nil
}

func (m *MockConfigProvider) Validate(config *Config) error {
	return nil
}
