// Package migration creates the HR desk schema. Every statement is
// idempotent, so it runs on each start of the API and from hrctl.
package migration

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RawTables are written with plain SQL because the outbox and the counters
// are accessed through database/sql, not through GORM models.
var RawTables = []string{
	`CREATE TABLE IF NOT EXISTS hr_counters (
	counter_type VARCHAR(50) PRIMARY KEY,
	last_value BIGINT NOT NULL DEFAULT 0,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
	id TEXT PRIMARY KEY,
	request_id TEXT,
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(255) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	next_retry_at TIMESTAMPTZ,
	error_message TEXT,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at)`,
}

func CreateRawTables(ctx context.Context, db *sql.DB) error {
	for i, stmt := range RawTables {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("raw migration %d: %w", i, err)
		}
	}
	return nil
}

// Run auto-migrates models and then creates the raw tables.
func Run(ctx context.Context, gormDB *gorm.DB, models ...any) error {
	log := zap.L().Named("migration")

	if err := gormDB.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := CreateRawTables(ctx, sqlDB); err != nil {
		return err
	}

	log.Info("schema up to date", zap.Int("models", len(models)), zap.Int("raw_tables", len(RawTables)))
	return nil
}
