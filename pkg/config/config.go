package config

import "os"

// Config holds the runtime configuration of the server
type Config struct {
	Port        string
	Env         string
	PostgresURL string
}

// Load reads configuration from the environment with sane defaults
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
