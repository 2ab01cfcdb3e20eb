package instrument

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
	"github.com/haemolab/lab-api/pkg/metrics"
)

const (
	registryKey     = "instruments"
	registryTTL     = 5 * time.Minute
	cleanupInterval = 15 * time.Minute
)

// Service manages the instrument registry; like reagents, the registry is
// read-heavy so list snapshots are cached and invalidated on write.
type Service struct {
	repo    repository.InstrumentRepository
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func NewService(repo repository.InstrumentRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   cache.New(registryTTL, cleanupInterval),
		metrics: m,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateInstrumentRequest) (*model.Instrument, error) {
	now := time.Now()
	instrument := &model.Instrument{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		InstrumentType: req.InstrumentType,
		Vendor:         req.Vendor,
		SerialNumber:   req.SerialNumber,
		LastCalibrated: req.LastCalibrated,
	}

	if err := s.repo.Create(ctx, instrument); err != nil {
		return nil, fmt.Errorf("failed to create instrument: %w", err)
	}
	s.cache.Delete(registryKey)
	return instrument, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Instrument, error) {
	instrument, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}
	return instrument, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateInstrumentRequest) (*model.Instrument, error) {
	instrument, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get instrument: %w", err)
	}

	if req.Name != nil {
		instrument.Name = *req.Name
	}
	if req.InstrumentType != nil {
		instrument.InstrumentType = *req.InstrumentType
	}
	if req.Vendor != nil {
		instrument.Vendor = *req.Vendor
	}
	if req.SerialNumber != nil {
		instrument.SerialNumber = *req.SerialNumber
	}
	if req.LastCalibrated != nil {
		instrument.LastCalibrated = *req.LastCalibrated
	}
	if req.Deleted != nil {
		instrument.Deleted = *req.Deleted
	}
	instrument.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, instrument); err != nil {
		return nil, fmt.Errorf("failed to update instrument: %w", err)
	}
	s.cache.Delete(registryKey)
	return instrument, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete instrument: %w", err)
	}
	s.cache.Delete(registryKey)
	return nil
}

func (s *Service) List(ctx context.Context, criteria filter.Criteria) ([]*model.Instrument, error) {
	instruments, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(instruments, criteria)
	if s.metrics != nil {
		s.metrics.ListFiltered.WithLabelValues("instrument").Add(float64(len(filtered)))
	}
	return filtered, nil
}

func (s *Service) snapshot(ctx context.Context) ([]*model.Instrument, error) {
	if cached, ok := s.cache.Get(registryKey); ok {
		if s.metrics != nil {
			s.metrics.CacheHits.WithLabelValues("instrument").Inc()
		}
		return cached.([]*model.Instrument), nil
	}

	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues("instrument").Inc()
	}
	instruments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}
	s.cache.Set(registryKey, instruments, cache.DefaultExpiration)
	return instruments, nil
}
