package testorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/email"
	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
	apperrors "github.com/haemolab/lab-api/pkg/errors"
	"github.com/haemolab/lab-api/pkg/metrics"
)

// Legal status transitions for an order. Cancelled and completed are
// terminal.
var statusTransitions = map[string][]string{
	model.OrderStatusPending:    {model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusProcessing: {model.OrderStatusCompleted, model.OrderStatusCancelled},
}

type Service struct {
	orders   repository.TestOrderRepository
	results  repository.TestResultRepository
	patients repository.PatientRepository
	email    email.Service
	metrics  *metrics.Metrics
}

func NewService(
	orders repository.TestOrderRepository,
	results repository.TestResultRepository,
	patients repository.PatientRepository,
	emailSvc email.Service,
	m *metrics.Metrics,
) *Service {
	return &Service{
		orders:   orders,
		results:  results,
		patients: patients,
		email:    emailSvc,
		metrics:  m,
	}
}

// Create opens a new pending order. The patient name is denormalized onto
// the order so the list search works without a join.
func (s *Service) Create(ctx context.Context, req *model.CreateTestOrderRequest, createdBy string) (*model.TestOrder, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid patient id", err)
	}

	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return nil, apperrors.NotFound("patient", err)
	}

	now := time.Now()
	order := &model.TestOrder{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		PatientID:   patient.ID,
		PatientName: patient.FullName,
		Panel:       req.Panel,
		Status:      model.OrderStatusPending,
		Priority:    req.Priority,
		Remarks:     req.Remarks,
		CreatedBy:   createdBy,
		AssignedTo:  req.AssignedTo,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create test order: %w", err)
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.TestOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get test order: %w", err)
	}
	return order, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateTestOrderRequest) (*model.TestOrder, error) {
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get test order: %w", err)
	}

	if req.Status != nil && *req.Status != order.Status {
		if !canTransition(order.Status, *req.Status) {
			return nil, apperrors.BadRequest(fmt.Sprintf("cannot move order from %s to %s", order.Status, *req.Status), nil)
		}
		order.Status = *req.Status
	}
	if req.Priority != nil {
		order.Priority = *req.Priority
	}
	if req.Remarks != nil {
		order.Remarks = *req.Remarks
	}
	if req.AssignedTo != nil {
		order.AssignedTo = *req.AssignedTo
	}
	order.UpdatedAt = time.Now()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update test order: %w", err)
	}
	return order, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete test order: %w", err)
	}
	return nil
}

func (s *Service) List(ctx context.Context, criteria filter.Criteria) ([]*model.TestOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list test orders: %w", err)
	}

	filtered := filter.Apply(orders, criteria)
	if s.metrics != nil {
		s.metrics.ListFiltered.WithLabelValues("test_order").Add(float64(len(filtered)))
	}
	return filtered, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.TestOrder, error) {
	orders, err := s.orders.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient orders: %w", err)
	}
	return orders, nil
}

// AddResult records one measured parameter. Results can only be entered
// while the order is processing.
func (s *Service) AddResult(ctx context.Context, req *model.CreateTestResultRequest) (*model.TestResult, error) {
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid order id", err)
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, apperrors.NotFound("test order", err)
	}
	if order.Status != model.OrderStatusProcessing {
		return nil, apperrors.Conflict(fmt.Sprintf("order is %s, results can only be added while processing", order.Status), nil)
	}

	resultFlag := req.ResultFlag
	if resultFlag == "" {
		resultFlag = model.ResultFlagNormal
	}

	now := time.Now()
	result := &model.TestResult{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderID:        order.ID,
		PatientID:      order.PatientID,
		Parameter:      req.Parameter,
		Value:          req.Value,
		Unit:           req.Unit,
		ReferenceRange: req.ReferenceRange,
		ResultFlag:     resultFlag,
	}

	if err := s.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to create test result: %w", err)
	}
	return result, nil
}

func (s *Service) ListResults(ctx context.Context, orderID uuid.UUID) ([]*model.TestResult, error) {
	results, err := s.results.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}

// ReleaseResults completes the order, stamps its results as released and
// notifies the patient. The mail is best effort; a delivery failure does
// not roll back the release.
func (s *Service) ReleaseResults(ctx context.Context, orderID uuid.UUID) (*model.TestOrder, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, apperrors.NotFound("test order", err)
	}
	if order.Status != model.OrderStatusProcessing {
		return nil, apperrors.Conflict(fmt.Sprintf("order is %s, only processing orders can be released", order.Status), nil)
	}

	results, err := s.results.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	if len(results) == 0 {
		return nil, apperrors.Conflict("order has no results to release", nil)
	}

	now := time.Now()
	if err := s.results.MarkReleased(ctx, orderID, now); err != nil {
		return nil, fmt.Errorf("failed to release results: %w", err)
	}

	order.Status = model.OrderStatusCompleted
	order.UpdatedAt = now
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to complete test order: %w", err)
	}

	if s.email != nil {
		if patient, err := s.patients.Get(ctx, order.PatientID); err == nil && patient.Email != "" {
			_ = s.email.SendResultReady(ctx, patient.Email, patient.FullName, order.Panel)
		}
	}
	return order, nil
}

func canTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
