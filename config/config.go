package config

import (
	"log"
	"os"
	"strconv"

	"github.com/AdityaZala3919/mini-services/pkg/constant"
)

// AuthConfig holds the settings for the authenticator service.
type AuthConfig struct {
	Env             string
	Port            string
	DBURL           string
	TokenSecret     string
	AccessExpiryMin int
}

// PredictConfig holds the settings for the housing price predictor.
type PredictConfig struct {
	Env       string
	Port      string
	ModelPath string
}

// DiaryConfig holds the settings for the diary service.
type DiaryConfig struct {
	Env       string
	Port      string
	IndexPath string
	DataDir   string
	ExportDir string
}

func LoadAuth() *AuthConfig {
	return &AuthConfig{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("AUTH_PORT", "8080"),
		DBURL:           mustGetEnv("DB_URL"),
		TokenSecret:     mustGetEnv("TOKEN_SECRET"),
		AccessExpiryMin: getEnvAsInt("ACCESS_TOKEN_EXPIRY", constant.DefaultAccessExpiryMin),
	}
}

func LoadPredict() *PredictConfig {
	return &PredictConfig{
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("PREDICT_PORT", "8081"),
		ModelPath: getEnv("MODEL_PATH", "model.json"),
	}
}

func LoadDiary() *DiaryConfig {
	return &DiaryConfig{
		Env:       getEnv("ENV", "development"),
		Port:      getEnv("DIARY_PORT", "8082"),
		IndexPath: getEnv("DIARY_INDEX_PATH", "diary.db"),
		DataDir:   getEnv("DIARY_DATA_DIR", "data"),
		ExportDir: getEnv("DIARY_EXPORT_DIR", "exports"),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
