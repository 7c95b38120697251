package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createMissionsQuery := `
	CREATE TABLE IF NOT EXISTS missions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		scheduled_at TIMESTAMPTZ NOT NULL,
		forfeit_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		status TEXT NOT NULL DEFAULT 'pending',
		technician_id TEXT
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_missions_technician_status
	ON missions(technician_id, status);
	`

	statements := []string{
		createMissionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the missions table from a JSON seed file. Existing rows with the
// same id are overwritten.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (int, error) {
	if db == nil {
		return 0, errors.New("seed missions: DB is nil")
	}

	missions, err := LoadSeedFile(jsonPath)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("seed missions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO missions (
		id, title, location, scheduled_at, forfeit_amount,
		latitude, longitude, status, technician_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
		location = EXCLUDED.location,
		scheduled_at = EXCLUDED.scheduled_at,
		forfeit_amount = EXCLUDED.forfeit_amount,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		status = EXCLUDED.status,
		technician_id = EXCLUDED.technician_id;
	`)
	if err != nil {
		return 0, fmt.Errorf("seed missions: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range missions {
		lat, lon := nullCoordinates(m.Coordinates)
		if _, err := stmt.ExecContext(ctx,
			m.ID, m.Title, m.Location, m.ScheduledAt, m.ForfeitAmount,
			lat, lon, string(m.Status), nullString(m.TechnicianID),
		); err != nil {
			return 0, fmt.Errorf("seed missions: insert id=%s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("seed missions: commit tx: %w", err)
	}

	return len(missions), nil
}
