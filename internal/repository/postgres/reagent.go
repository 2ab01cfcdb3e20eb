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

type reagentRepository struct {
	db *sqlx.DB
}

func NewReagentRepository(db *sqlx.DB) repository.ReagentRepository {
	return &reagentRepository{db: db}
}

func (r *reagentRepository) Create(ctx context.Context, reagent *model.Reagent) error {
	query := `
		INSERT INTO reagents (id, name, vendor, reagent_type, lot_number, expiry_date,
			remarks, deleted, created_at, updated_at)
		VALUES (:id, :name, :vendor, :reagent_type, :lot_number, :expiry_date,
			:remarks, :deleted, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, reagent); err != nil {
		return fmt.Errorf("failed to insert reagent: %w", err)
	}
	return nil
}

func (r *reagentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Reagent, error) {
	var reagent model.Reagent
	err := r.db.GetContext(ctx, &reagent, `SELECT * FROM reagents WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reagent %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reagent: %w", err)
	}
	return &reagent, nil
}

func (r *reagentRepository) Update(ctx context.Context, reagent *model.Reagent) error {
	query := `
		UPDATE reagents SET
			name = :name,
			vendor = :vendor,
			reagent_type = :reagent_type,
			lot_number = :lot_number,
			expiry_date = :expiry_date,
			remarks = :remarks,
			deleted = :deleted,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, reagent)
	if err != nil {
		return fmt.Errorf("failed to update reagent: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("reagent %s not found", reagent.ID)
	}
	return nil
}

func (r *reagentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reagents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reagent: %w", err)
	}
	return nil
}

func (r *reagentRepository) List(ctx context.Context) ([]*model.Reagent, error) {
	var reagents []*model.Reagent
	err := r.db.SelectContext(ctx, &reagents, `SELECT * FROM reagents ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reagents: %w", err)
	}
	return reagents, nil
}
