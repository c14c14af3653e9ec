package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"orderflow/internal/adapters/out/postgres/orderrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL through lib/pq and wraps the pool in GORM.
//
//	db, err := postgres.Open(cfg.DSN())
//	if err != nil {
//	    log.Fatalf("failed to connect database: %v", err)
//	}
func Open(dsn string) (*gorm.DB, error) {
	const defaultMaxOpenConnections = 25
	const defaultMaxIdleConnections = 5
	const defaultMaxConnLifetime = 30 * time.Minute
	const defaultMaxConnIdleTime = 5 * time.Minute

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(defaultMaxOpenConnections)
	sqlDB.SetMaxIdleConns(defaultMaxIdleConnections)
	sqlDB.SetConnMaxLifetime(defaultMaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(defaultMaxConnIdleTime)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the tables the repositories read and write.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{})
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
