package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	RemoteStore RemoteStoreConfig
	OTEL        OTELConfig
	Logging     LoggingConfig
	Environment string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// RemoteStoreConfig holds the remote data backend connection parameters.
// The presence of both values at startup selects the remote backend for
// the whole process lifetime; otherwise every call uses the in-process
// sample store. There is no runtime reconfiguration.
type RemoteStoreConfig struct {
	URL        string
	ServiceKey string
	AuthURL    string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		RemoteStore: RemoteStoreConfig{
			URL:        getEnv("REMOTE_STORE_URL", ""),
			ServiceKey: getEnv("REMOTE_STORE_KEY", ""),
			AuthURL:    getEnv("REMOTE_AUTH_URL", ""),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "clinic-backend"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}, nil
}

// Configured reports whether the remote backend is selected for this process
func (c *RemoteStoreConfig) Configured() bool {
	return c.URL != "" && c.ServiceKey != ""
}

// DSN returns the remote store connection string
func (c *RemoteStoreConfig) DSN() string {
	return c.URL
}

// AuthEndpoint returns the base URL of the remote auth subsystem. When
// REMOTE_AUTH_URL is not set it is derived from the store URL's host.
func (c *RemoteStoreConfig) AuthEndpoint() string {
	if c.AuthURL != "" {
		return strings.TrimRight(c.AuthURL, "/")
	}
	parsed, err := url.Parse(c.URL)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	return "https://" + parsed.Hostname() + "/auth/v1"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
