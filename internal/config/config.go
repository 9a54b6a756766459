package config

import "os"

type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	SeedCatalog bool
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "sparkquest.db"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:        getEnv("PORT", "8080"),
		SeedCatalog: getEnv("SEED_CATALOG", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
