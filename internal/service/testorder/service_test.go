package testorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/model"
	apperrors "github.com/haemolab/lab-api/pkg/errors"
)

type fakeOrderRepo struct {
	byID  map[uuid.UUID]*model.TestOrder
	order []uuid.UUID
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[uuid.UUID]*model.TestOrder)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *model.TestOrder) error {
	r.byID[o.ID] = o
	r.order = append(r.order, o.ID)
	return nil
}

func (r *fakeOrderRepo) Get(_ context.Context, id uuid.UUID) (*model.TestOrder, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return o, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, o *model.TestOrder) error {
	r.byID[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*model.TestOrder, error) {
	out := make([]*model.TestOrder, 0, len(r.order))
	for _, id := range r.order {
		if o, ok := r.byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.TestOrder, error) {
	all, _ := r.List(ctx)
	out := make([]*model.TestOrder, 0, len(all))
	for _, o := range all {
		if o.PatientID == patientID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	byOrder  map[uuid.UUID][]*model.TestResult
	released map[uuid.UUID]time.Time
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		byOrder:  make(map[uuid.UUID][]*model.TestResult),
		released: make(map[uuid.UUID]time.Time),
	}
}

func (r *fakeResultRepo) Create(_ context.Context, res *model.TestResult) error {
	r.byOrder[res.OrderID] = append(r.byOrder[res.OrderID], res)
	return nil
}

func (r *fakeResultRepo) Get(_ context.Context, id uuid.UUID) (*model.TestResult, error) {
	for _, results := range r.byOrder {
		for _, res := range results {
			if res.ID == id {
				return res, nil
			}
		}
	}
	return nil, errors.New("result not found")
}

func (r *fakeResultRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]*model.TestResult, error) {
	return r.byOrder[orderID], nil
}

func (r *fakeResultRepo) MarkReleased(_ context.Context, orderID uuid.UUID, at time.Time) error {
	r.released[orderID] = at
	return nil
}

type fakePatientRepo struct {
	byID map[uuid.UUID]*model.Patient
}

func newFakePatientRepo(patients ...*model.Patient) *fakePatientRepo {
	r := &fakePatientRepo{byID: make(map[uuid.UUID]*model.Patient)}
	for _, p := range patients {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, errors.New("patient not found")
	}
	return p, nil
}

func (r *fakePatientRepo) Update(_ context.Context, p *model.Patient) error {
	r.byID[p.ID] = p
	return nil
}

func (r *fakePatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeEmailService struct {
	resultMails []string
}

func (s *fakeEmailService) SendPasswordReset(_ context.Context, _, _ string) error { return nil }
func (s *fakeEmailService) SendWelcome(_ context.Context, _, _ string) error       { return nil }

func (s *fakeEmailService) SendResultReady(_ context.Context, to, _, _ string) error {
	s.resultMails = append(s.resultMails, to)
	return nil
}

func testPatient() *model.Patient {
	return &model.Patient{
		Base:     model.Base{ID: uuid.New()},
		FullName: "Nguyễn Văn An",
		Gender:   "male",
		Email:    "an@example.com",
	}
}

func newTestService(patients ...*model.Patient) (*Service, *fakeOrderRepo, *fakeResultRepo, *fakeEmailService) {
	orders := newFakeOrderRepo()
	results := newFakeResultRepo()
	mails := &fakeEmailService{}
	svc := NewService(orders, results, newFakePatientRepo(patients...), mails, nil)
	return svc, orders, results, mails
}

func TestCreateOrderDenormalizesPatient(t *testing.T) {
	patient := testPatient()
	svc, _, _, _ := newTestService(patient)

	order, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityRoutine,
	}, "tech-1")
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, patient.FullName, order.PatientName)
	assert.Equal(t, "tech-1", order.CreatedBy)
}

func TestCreateOrderUnknownPatient(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: uuid.NewString(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityRoutine,
	}, "tech-1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestStatusTransitions(t *testing.T) {
	patient := testPatient()
	svc, _, _, _ := newTestService(patient)

	order, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityUrgent,
	}, "tech-1")
	require.NoError(t, err)

	// pending -> completed skips processing and is rejected.
	completed := model.OrderStatusCompleted
	_, err = svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &completed})
	require.Error(t, err)

	processing := model.OrderStatusProcessing
	updated, err := svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &processing})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, updated.Status)

	cancelled := model.OrderStatusCancelled
	_, err = svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &cancelled})
	require.NoError(t, err)

	// Cancelled is terminal.
	_, err = svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &processing})
	require.Error(t, err)
}

func TestAddResultRequiresProcessing(t *testing.T) {
	patient := testPatient()
	svc, _, _, _ := newTestService(patient)

	order, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityRoutine,
	}, "tech-1")
	require.NoError(t, err)

	req := &model.CreateTestResultRequest{
		OrderID:   order.ID.String(),
		Parameter: "WBC",
		Value:     6.2,
		Unit:      "10^9/L",
	}

	_, err = svc.AddResult(context.Background(), req)
	require.Error(t, err, "pending order must not accept results")

	processing := model.OrderStatusProcessing
	_, err = svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &processing})
	require.NoError(t, err)

	result, err := svc.AddResult(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.ResultFlagNormal, result.ResultFlag, "missing flag defaults to normal")
	assert.Equal(t, patient.ID, result.PatientID)
}

func TestReleaseResults(t *testing.T) {
	patient := testPatient()
	svc, _, results, mails := newTestService(patient)

	order, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityStat,
	}, "tech-1")
	require.NoError(t, err)

	processing := model.OrderStatusProcessing
	_, err = svc.Update(context.Background(), order.ID, &model.UpdateTestOrderRequest{Status: &processing})
	require.NoError(t, err)

	// No results yet: release is a conflict.
	_, err = svc.ReleaseResults(context.Background(), order.ID)
	require.Error(t, err)

	_, err = svc.AddResult(context.Background(), &model.CreateTestResultRequest{
		OrderID:   order.ID.String(),
		Parameter: "HGB",
		Value:     13.5,
		Unit:      "g/dL",
	})
	require.NoError(t, err)

	released, err := svc.ReleaseResults(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, released.Status)

	_, stamped := results.released[order.ID]
	assert.True(t, stamped)
	assert.Equal(t, []string{"an@example.com"}, mails.resultMails)
}

func TestListFiltersByStatusCategory(t *testing.T) {
	patient := testPatient()
	svc, _, _, _ := newTestService(patient)

	first, err := svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "CBC",
		Priority:  model.OrderPriorityRoutine,
	}, "tech-1")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.CreateTestOrderRequest{
		PatientID: patient.ID.String(),
		Panel:     "Lipid",
		Priority:  model.OrderPriorityRoutine,
	}, "tech-1")
	require.NoError(t, err)

	processing := model.OrderStatusProcessing
	_, err = svc.Update(context.Background(), first.ID, &model.UpdateTestOrderRequest{Status: &processing})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), filter.Criteria{Category: model.OrderStatusProcessing})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, first.ID, got[0].ID)
}
