package config

import "os"

const defaultAPIURL = "https://api.openweathermap.org/data/2.5/weather"

// Config contains weather page settings.
type Config struct {
	Port     string
	Origin   string
	LogLevel string
	APIURL   string
	// APIKey is passed to OpenWeatherMap as is, an empty key is rejected upstream.
	APIKey string
}

// Load reads config from environment variables.
func Load() *Config {
	return &Config{
		Port:     os.Getenv("PORT"),
		Origin:   os.Getenv("ORIGIN"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		APIURL:   getEnv("OPENWEATHERMAP_API_URL", defaultAPIURL),
		APIKey:   os.Getenv("OPENWEATHERMAP_API_KEY"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
