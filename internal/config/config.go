package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	// Server-side cap on any single statement. Exceeding it surfaces
	// to the client as 503.
	DBStatementTimeout time.Duration

	// JWT
	JWTSecret string // base64-encoded HMAC key
	JWTTTL    time.Duration

	// Server
	Port        string
	APIPrefix   string
	CORSOrigins string

	// Seed demo data on boot
	Seed bool
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "petcare_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DBStatementTimeout: parseMillis(getEnv("DB_STATEMENT_TIMEOUT_MS", "5000")),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    parseMillis(getEnv("JWT_TTL_MS", "3600000")),

		Port:        getEnv("PORT", "8080"),
		APIPrefix:   getEnv("API_PREFIX", "/api"),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		Seed: getEnv("SEED", "false") == "true",
	}
}

// JWTKey decodes the configured base64 HMAC signing key.
func (c *Config) JWTKey() ([]byte, error) {
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	key, err := base64.StdEncoding.DecodeString(c.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET must be valid base64: %w", err)
	}
	return key, nil
}

func (c *Config) DSN() string {
	dsn := "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
	if c.DBStatementTimeout > 0 {
		dsn += " statement_timeout=" + strconv.FormatInt(c.DBStatementTimeout.Milliseconds(), 10)
	}
	return dsn
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseMillis(s string) time.Duration {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms <= 0 {
		return time.Hour
	}
	return time.Duration(ms) * time.Millisecond
}
