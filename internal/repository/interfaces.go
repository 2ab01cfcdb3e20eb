package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/model"
)

type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Account, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Patient, error)
}

type ReagentRepository interface {
	Create(ctx context.Context, reagent *model.Reagent) error
	Get(ctx context.Context, id uuid.UUID) (*model.Reagent, error)
	Update(ctx context.Context, reagent *model.Reagent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Reagent, error)
}

type InstrumentRepository interface {
	Create(ctx context.Context, instrument *model.Instrument) error
	Get(ctx context.Context, id uuid.UUID) (*model.Instrument, error)
	Update(ctx context.Context, instrument *model.Instrument) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.Instrument, error)
}

type TestOrderRepository interface {
	Create(ctx context.Context, order *model.TestOrder) error
	Get(ctx context.Context, id uuid.UUID) (*model.TestOrder, error)
	Update(ctx context.Context, order *model.TestOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*model.TestOrder, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.TestOrder, error)
}

type TestResultRepository interface {
	Create(ctx context.Context, result *model.TestResult) error
	Get(ctx context.Context, id uuid.UUID) (*model.TestResult, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*model.TestResult, error)
	MarkReleased(ctx context.Context, orderID uuid.UUID, at time.Time) error
}

// TokenRepository persists refresh tokens so logout and rotation can
// revoke them before they expire.
type TokenRepository interface {
	Save(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error
	Valid(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID) error
}
