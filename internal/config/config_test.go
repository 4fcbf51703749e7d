package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSNStatementTimeout(t *testing.T) {
	cfg := &Config{
		DBHost:             "localhost",
		DBPort:             "5432",
		DBUser:             "postgres",
		DBName:             "petcare_db",
		DBSSLMode:          "disable",
		DBStatementTimeout: 5 * time.Second,
	}
	assert.Contains(t, cfg.DSN(), " statement_timeout=5000")

	cfg.DBStatementTimeout = 0
	assert.NotContains(t, cfg.DSN(), "statement_timeout")
}
