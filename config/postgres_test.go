package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Christian123002/Bitcoin-Tracker/config"
)

func TestPostgresDSN(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pw",
		DBName:   "btctracker",
		SSLMode:  "disable",
		TimeZone: "UTC",
	}

	dsn := cfg.DSN("dev")
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pw dbname=btctracker sslmode=disable TimeZone=UTC",
		dsn)
}

func TestPostgresDSNOmitsEmptyTimeZone(t *testing.T) {
	cfg := config.PostgresConfig{
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		DBName:   "d",
		SSLMode:  "disable",
	}
	assert.NotContains(t, cfg.DSN("dev"), "TimeZone")
}
