package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/label"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
	"github.com/haemolab/lab-api/pkg/metrics"
)

type Service struct {
	repo    repository.PatientRepository
	metrics *metrics.Metrics
}

func NewService(repo repository.PatientRepository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	now := time.Now()
	patient := &model.Patient{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName: req.FullName,
		// Stored gender is always the canonical key, whatever spelling
		// the form submitted.
		Gender:        label.NormalizeGender(req.Gender),
		DateOfBirth:   req.DateOfBirth,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		LastTestDate:  req.LastTestDate,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	if req.FullName != nil {
		patient.FullName = *req.FullName
	}
	if req.Gender != nil {
		patient.Gender = label.NormalizeGender(*req.Gender)
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = *req.DateOfBirth
	}
	if req.Email != nil {
		patient.Email = *req.Email
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.ContactNumber != nil {
		patient.ContactNumber = *req.ContactNumber
	}
	if req.LastTestDate != nil {
		patient.LastTestDate = *req.LastTestDate
	}
	if req.Deleted != nil {
		patient.Deleted = *req.Deleted
	}
	patient.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

// List fetches all patients and applies the list filters in memory. The
// time-range filter runs against the last-test-date field, which legacy
// imports carry in mixed formats; the filter layer handles the parsing.
func (s *Service) List(ctx context.Context, criteria filter.Criteria) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	filtered := filter.Apply(patients, criteria)
	if s.metrics != nil {
		s.metrics.ListFiltered.WithLabelValues("patient").Add(float64(len(filtered)))
	}
	return filtered, nil
}
