// Package config loads runtime settings from the environment, with an
// optional .env file for local setups.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the CLI and web front end need to run.
type Config struct {
	// Device is the serial device path
	Device string

	// ReadTimeout is the serial response window
	ReadTimeout time.Duration

	// RetryCooldown is the pause before the link is reopened after a
	// failed operation
	RetryCooldown time.Duration

	// ProfileDir is where named profiles are stored
	ProfileDir string

	// HistoryPath is the action history database file
	HistoryPath string

	// HTTPAddr is the web front end listen address
	HTTPAddr string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Device:        getEnv("IRMAGI_DEVICE", "/dev/ttyUSB0"),
		ReadTimeout:   getEnvMillis("IRMAGI_TIMEOUT_MS", 5000),
		RetryCooldown: getEnvMillis("IRMAGI_RETRY_COOLDOWN_MS", 1000),
		ProfileDir:    getEnv("IRMAGI_PROFILE_DIR", "profiles"),
		HistoryPath:   getEnv("IRMAGI_HISTORY_DB", "history.db"),
		HTTPAddr:      getEnv("IRMAGI_HTTP_ADDR", ":4567"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvMillis(key string, defaultValue int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultValue) * time.Millisecond
	}

	millis, err := strconv.Atoi(value)
	if err != nil || millis <= 0 {
		log.Printf("Warning: failed to parse %s as milliseconds, using default: %v", key, err)
		return time.Duration(defaultValue) * time.Millisecond
	}
	return time.Duration(millis) * time.Millisecond
}
