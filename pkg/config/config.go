package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	BaseURL          string
	FirebaseProject  string
	FirebaseApiKey   string
	StorageBucket    string
	SendgridApiKey   string
	SendgridFrom     string
	SessionSecret    string
	SettingsCacheTTL int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		BaseURL:          getEnv("BASE_URL", "http://localhost:3000"),
		FirebaseProject:  getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:   getEnv("FIREBASE_API_KEY", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),
		SendgridApiKey:   getEnv("SENDGRID_API_KEY", ""),
		SendgridFrom:     getEnv("SENDGRID_FROM_EMAIL", "no-reply@dropfit.com"),
		SessionSecret:    getEnv("SESSION_SECRET", "dropfit-session-secret"),
		SettingsCacheTTL: getEnvAsInt64("SETTINGS_CACHE_TTL_SECONDS", 5*60),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
