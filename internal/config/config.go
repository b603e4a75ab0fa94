package config

import (
	"os"
)

type Config struct {
	ServerPort string
	DataDir    string
	LogLevel   string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		DataDir:    getEnv("DATA_DIR", "./data"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
