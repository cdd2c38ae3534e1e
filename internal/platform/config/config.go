package config

import "os"

// Config captures process-level configuration sourced from the environment.
type Config struct {
	Addr        string
	DatabaseURL string
	LogLevel    string
	LogFormat   string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "postgres://localhost:5432/vendordb?sslmode=disable"
	}

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	return Config{
		Addr:        ":" + port,
		DatabaseURL: dbURL,
		LogLevel:    level,
		LogFormat:   os.Getenv("LOG_FORMAT"),
	}
}
