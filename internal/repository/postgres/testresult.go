package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
)

type testResultRepository struct {
	db *sqlx.DB
}

func NewTestResultRepository(db *sqlx.DB) repository.TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	query := `
		INSERT INTO test_results (id, order_id, patient_id, parameter, value, unit,
			reference_range, result_flag, released_at, created_at, updated_at)
		VALUES (:id, :order_id, :patient_id, :parameter, :value, :unit,
			:reference_range, :result_flag, :released_at, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("failed to insert test result: %w", err)
	}
	return nil
}

func (r *testResultRepository) Get(ctx context.Context, id uuid.UUID) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.GetContext(ctx, &result, `SELECT * FROM test_results WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("test result %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get test result: %w", err)
	}
	return &result, nil
}

func (r *testResultRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*model.TestResult, error) {
	var results []*model.TestResult
	err := r.db.SelectContext(ctx, &results,
		`SELECT * FROM test_results WHERE order_id = $1 ORDER BY parameter`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order results: %w", err)
	}
	return results, nil
}

func (r *testResultRepository) MarkReleased(ctx context.Context, orderID uuid.UUID, at time.Time) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE test_results SET released_at = $1 WHERE order_id = $2`, at, orderID); err != nil {
		return fmt.Errorf("failed to mark results released: %w", err)
	}
	return nil
}
