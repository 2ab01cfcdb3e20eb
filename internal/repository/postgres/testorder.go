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

type testOrderRepository struct {
	db *sqlx.DB
}

func NewTestOrderRepository(db *sqlx.DB) repository.TestOrderRepository {
	return &testOrderRepository{db: db}
}

func (r *testOrderRepository) Create(ctx context.Context, order *model.TestOrder) error {
	query := `
		INSERT INTO test_orders (id, patient_id, patient_name, panel, status, priority,
			remarks, created_by, assigned_to, created_at, updated_at)
		VALUES (:id, :patient_id, :patient_name, :panel, :status, :priority,
			:remarks, :created_by, :assigned_to, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to insert test order: %w", err)
	}
	return nil
}

func (r *testOrderRepository) Get(ctx context.Context, id uuid.UUID) (*model.TestOrder, error) {
	var order model.TestOrder
	err := r.db.GetContext(ctx, &order, `SELECT * FROM test_orders WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("test order %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get test order: %w", err)
	}
	return &order, nil
}

func (r *testOrderRepository) Update(ctx context.Context, order *model.TestOrder) error {
	query := `
		UPDATE test_orders SET
			status = :status,
			priority = :priority,
			remarks = :remarks,
			assigned_to = :assigned_to,
			updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return fmt.Errorf("failed to update test order: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("test order %s not found", order.ID)
	}
	return nil
}

func (r *testOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM test_orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete test order: %w", err)
	}
	return nil
}

func (r *testOrderRepository) List(ctx context.Context) ([]*model.TestOrder, error) {
	var orders []*model.TestOrder
	err := r.db.SelectContext(ctx, &orders, `SELECT * FROM test_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list test orders: %w", err)
	}
	return orders, nil
}

func (r *testOrderRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.TestOrder, error) {
	var orders []*model.TestOrder
	err := r.db.SelectContext(ctx, &orders,
		`SELECT * FROM test_orders WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient orders: %w", err)
	}
	return orders, nil
}
