package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Env              string
	DatabaseURL      string
	Port             string
	TranslateAPIURL  string
	TranslateTimeout time.Duration
	SourceLang       string
	TargetLang       string
}

// Load 加载配置
func Load() *Config {
	timeoutSecs, _ := strconv.Atoi(getEnv("TRANSLATE_TIMEOUT_SECONDS", "15"))

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", "moviebot")
	dbSSL := getEnv("DB_SSLMODE", "disable")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPass, dbHost, dbPort, dbName, dbSSL)

	return &Config{
		Env:              getEnv("APP_ENV", "development"),
		DatabaseURL:      getEnv("DATABASE_URL", dbURL),
		Port:             getEnv("PORT", "5005"),
		TranslateAPIURL:  getEnv("TRANSLATE_API_URL", "http://localhost:5001/translate"),
		TranslateTimeout: time.Duration(timeoutSecs) * time.Second,
		SourceLang:       getEnv("TRANSLATE_SOURCE_LANG", "auto"),
		TargetLang:       getEnv("TRANSLATE_TARGET_LANG", "ru"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
