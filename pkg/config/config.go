// Package config loads the demo server's configuration from
// environment variables, with validated, sane defaults. The cmd/gen CLI
// does not use it; it takes its settings from flags. The generation
// engine itself takes no file-based configuration: GenerationConfig is
// a plain struct literal the caller builds directly.
package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the demo server's environment-driven settings.
type Config struct {
	JWTSecret string
	Port      string
	DefaultK  int
}

// Load reads configuration from the environment. It fails if JWT_SECRET
// is unset, is the obviously-insecure "changeme" placeholder, or is
// shorter than 32 characters.
func Load() (*Config, error) {
	jwtSecret := os.Getenv("JWT_SECRET")

	if jwtSecret == "" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET environment variable is required but not set")
	}
	if jwtSecret == "changeme" {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET cannot be 'changeme' - please set a secure secret")
	}
	if len(jwtSecret) < 32 {
		return nil, errors.New("SECURITY ERROR: JWT_SECRET must be at least 32 characters long")
	}

	return &Config{
		JWTSecret: jwtSecret,
		Port:      getEnv("PORT", "8080"),
		DefaultK:  getEnvInt("DEFAULT_K", 3),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
