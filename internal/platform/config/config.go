package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	JWTSecret      string
	Environment    string
	PayslipDir     string
	MaxBodyBytes   int64
	MetricsEnabled bool
	RunMigrations  bool
	MigrationsDir  string
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		Environment:    getEnv("APP_ENV", "development"),
		PayslipDir:     getEnv("PAYSLIP_DIR", "storage/payslips"),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.Environment == "production" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if strings.TrimSpace(c.PayslipDir) == "" {
		return fmt.Errorf("PAYSLIP_DIR must not be empty")
	}
	return nil
}
