package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the service needs at startup. Values come from
// the environment; see cmd/app for the loading rules.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RequestTimeout is how long a delivery request may stay unanswered
	// before the sweep times it out.
	RequestTimeout time.Duration

	// MinimumOrderValue is the smallest basket total accepted at checkout,
	// in minor currency units.
	MinimumOrderValue int64
}

// PostgresDSN renders the GORM connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
