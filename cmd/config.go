package cmd

import (
	"errors"
	"fmt"
	"time"
)

// Storage backends selectable with STORAGE.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Storage is StoragePostgres or StorageMemory.
	Storage string

	// PendingOrderTTL is how long an order may stay Pending before the expiry job cancels it.
	PendingOrderTTL time.Duration
	// ExpirySchedule is a six-field cron expression (seconds first).
	ExpirySchedule string
}

// DSN builds a lib/pq keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Validate reports configuration the application cannot start with.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT is required")
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE must be %q or %q, got %q", StoragePostgres, StorageMemory, c.Storage)
	}
	if c.PendingOrderTTL <= 0 {
		return fmt.Errorf("PENDING_ORDER_TTL must be positive, got %s", c.PendingOrderTTL)
	}
	if c.ExpirySchedule == "" {
		return errors.New("EXPIRY_SCHEDULE is required")
	}
	return nil
}
