package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	InstanceName    string

	// SessionSecret signs the click-count cookie. Empty means a random key
	// is generated at start-up, so sessions do not survive a restart.
	SessionSecret string
	SessionSecure bool

	ShareLinkEnabled bool

	OTLPEndpoint string
	ServiceName  string
}

func Load() Config {
	return Config{
		Port:             getEnv("BACKEND_PORT", "8080"),
		ReadTimeout:      getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:     getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:      getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		InstanceName:     getEnv("INSTANCE_NAME", "valentine-1"),
		SessionSecret:    getEnv("SESSION_SECRET", ""),
		SessionSecure:    getEnvAsBool("SESSION_SECURE", false),
		ShareLinkEnabled: getEnvAsBool("SHARE_LINK_ENABLED", true),
		OTLPEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:      getEnv("OTEL_SERVICE_NAME", "valentine"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
