package config

import "os"

// Config holds runtime settings read from the environment.
type Config struct {
	ConnectionString string
	DatabaseName     string
	Port             string
}

func Load() Config {
	return Config{
		ConnectionString: os.Getenv("connectionString"),
		DatabaseName:     getEnv("databaseName", "airline_booking"),
		Port:             getEnv("port", "8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
