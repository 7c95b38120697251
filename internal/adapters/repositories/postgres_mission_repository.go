package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mission-route-service/internal/domain"
)

// Postgres-backed implementation of the MissionRepository port.
type PostgresMissionRepository struct{ DB *sql.DB }

func NewPostgresMissionRepository(db *sql.DB) *PostgresMissionRepository {
	return &PostgresMissionRepository{DB: db}
}

const missionColumns = `
	id, title, location, scheduled_at, forfeit_amount,
	latitude, longitude, status, technician_id
`

// Return the technician's accepted missions, earliest first.
func (s *PostgresMissionRepository) ListAcceptedMissions(
	ctx context.Context,
	technicianID string,
) ([]*domain.Mission, error) {
	if s.DB == nil {
		return nil, errors.New("postgres mission repository: DB is nil")
	}

	query := `SELECT` + missionColumns + `
	FROM missions
	WHERE technician_id = $1 AND status = $2
	ORDER BY scheduled_at, id;
	`
	rows, err := s.DB.QueryContext(ctx, query, technicianID, string(domain.MissionAccepted))
	if err != nil {
		return nil, fmt.Errorf("list accepted missions: query missions table: %w", err)
	}
	defer rows.Close()

	missions := make([]*domain.Mission, 0, 16)
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, fmt.Errorf("list accepted missions: scan row: %w", err)
		}
		missions = append(missions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accepted missions: row iteration: %w", err)
	}

	return missions, nil
}

func (s *PostgresMissionRepository) GetMission(ctx context.Context, id string) (*domain.Mission, error) {
	if s.DB == nil {
		return nil, errors.New("postgres mission repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `SELECT`+missionColumns+`FROM missions WHERE id = $1;`, id)
	m, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get mission %s: %w", id, domain.ErrMissionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get mission %s: %w", id, err)
	}
	return m, nil
}

// Assign the mission inside a transaction so concurrent assignments serialize on the row.
func (s *PostgresMissionRepository) AssignMission(
	ctx context.Context,
	missionID string,
	technicianID string,
) (*domain.Mission, error) {
	if s.DB == nil {
		return nil, errors.New("postgres mission repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("assign mission: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `SELECT`+missionColumns+`FROM missions WHERE id = $1 FOR UPDATE;`, missionID)
	m, err := scanMission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assign mission %s: %w", missionID, domain.ErrMissionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("assign mission %s: select: %w", missionID, err)
	}

	if err := m.AssignTo(technicianID); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE missions SET technician_id = $1, status = $2 WHERE id = $3;`,
		m.TechnicianID, string(m.Status), m.ID,
	); err != nil {
		return nil, fmt.Errorf("assign mission %s: update: %w", missionID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("assign mission %s: commit tx: %w", missionID, err)
	}

	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMission(r rowScanner) (*domain.Mission, error) {
	var (
		m            domain.Mission
		lat, lon     sql.NullFloat64
		status       string
		technicianID sql.NullString
	)
	if err := r.Scan(
		&m.ID, &m.Title, &m.Location, &m.ScheduledAt, &m.ForfeitAmount,
		&lat, &lon, &status, &technicianID,
	); err != nil {
		return nil, err
	}

	if lat.Valid && lon.Valid {
		m.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
	}
	m.Status = domain.MissionStatus(status)
	m.TechnicianID = technicianID.String

	return &m, nil
}

func nullCoordinates(c *domain.Coordinates) (lat, lon sql.NullFloat64) {
	if c == nil {
		return lat, lon
	}
	return sql.NullFloat64{Float64: c.Lat, Valid: true}, sql.NullFloat64{Float64: c.Lon, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
