package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
)

type instrumentRepository struct {
	db *sqlx.DB
}

func NewInstrumentRepository(db *sqlx.DB) repository.InstrumentRepository {
	return &instrumentRepository{db: db}
}

func (r *instrumentRepository) Create(ctx context.Context, instrument *model.Instrument) error {
	query := `
		INSERT INTO instruments (id, name, instrument_type, vendor, serial_number,
			last_calibrated, deleted, created_at, updated_at)
		VALUES (:id, :name, :instrument_type, :vendor, :serial_number,
			:last_calibrated, :deleted, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, instrument); err != nil {
		return fmt.Errorf("failed to insert instrument: %w", err)
	}
	return nil
}

func (r *instrumentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Instrument, error) {
	var instrument model.Instrument
	err := r.db.GetContext(ctx, &instrument, `SELECT * FROM instruments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("instrument %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}
	return &instrument, nil
}

func (r *instrumentRepository) Update(ctx context.Context, instrument *model.Instrument) error {
	query := `
		UPDATE instruments SET
			name = :name,
			instrument_type = :instrument_type,
			vendor = :vendor,
			serial_number = :serial_number,
			last_calibrated = :last_calibrated,
			deleted = :deleted,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, instrument)
	if err != nil {
		return fmt.Errorf("failed to update instrument: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("instrument %s not found", instrument.ID)
	}
	return nil
}

func (r *instrumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM instruments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete instrument: %w", err)
	}
	return nil
}

func (r *instrumentRepository) List(ctx context.Context) ([]*model.Instrument, error) {
	var instruments []*model.Instrument
	err := r.db.SelectContext(ctx, &instruments, `SELECT * FROM instruments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	return instruments, nil
}
