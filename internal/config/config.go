package config

import (
	"os"
	"strconv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	Env        string

	// Firestore settings. When ProjectID is empty the server falls back
	// to the in-memory mock store.
	FirestoreProjectID       string
	FirestoreCredentialsFile string

	RedisAddr string
	RedisDB   int
	RedisPass string

	UploadDir   string
	FrontendURL string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:               getEnv("SERVER_PORT", "5000"),
		Env:                      getEnv("ENV", "development"),
		FirestoreProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:                  getEnvInt("REDIS_DB", 0),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		UploadDir:                getEnv("UPLOAD_DIR", "./uploads"),
		FrontendURL:              getEnv("FRONTEND_URL", "http://localhost:5173"),
		SwaggerHost:              os.Getenv("SWAGGER_HOST"),
	}
}

// IsProduction reports whether the server runs in production mode.
// Internal error messages are redacted from responses when it does.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
