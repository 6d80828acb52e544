package db

import (
	"database/sql"
	"fmt"
	"time"

	"storefront-gateway/internal/config"
	"storefront-gateway/internal/logger"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// DSN builds the lib/pq connection string for the gateway's own tables.
func DSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func InitDB(cfg *config.Config) *sql.DB {
	db, err := Open("postgres", DSN(cfg))
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}

	logger.L().Info("database connection established",
		zap.String("host", cfg.DBHost),
		zap.String("name", cfg.DBName),
	)
	return db
}
