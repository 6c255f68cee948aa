package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything read from the environment. Built once in main
// and passed down, never read ad hoc by the lower layers.
type Config struct {
	AppPort string

	DatabaseURL string
	DBHost      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBPort      string

	FastprintBaseURL string
	HTTPTimeout      time.Duration
}

func Load() Config {
	timeoutSec, err := strconv.Atoi(get("HTTP_TIMEOUT_SECONDS", "30"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}
	return Config{
		AppPort:          get("APP_PORT", "3000"),
		DatabaseURL:      get("DATABASE_URL", ""),
		DBHost:           get("DB_HOST", "localhost"),
		DBUser:           get("DB_USER", "postgres"),
		DBPassword:       get("DB_PASSWORD", ""),
		DBName:           get("DB_NAME", "product_catalog"),
		DBPort:           get("DB_PORT", "5432"),
		FastprintBaseURL: get("FASTPRINT_BASE_URL", "https://recruitment.fastprint.co.id/tes/api_tes_programmer"),
		HTTPTimeout:      time.Duration(timeoutSec) * time.Second,
	}
}

// DSN returns the Postgres connection string. DATABASE_URL wins when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
