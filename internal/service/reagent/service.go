package reagent

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
	catalogKey      = "reagents"
	catalogTTL      = 5 * time.Minute
	cleanupInterval = 15 * time.Minute
)

// Service manages the reagent catalog. The catalog is small and read-heavy
// (every order form loads it), so list snapshots are cached and invalidated
// on write.
type Service struct {
	repo    repository.ReagentRepository
	cache   *cache.Cache
	metrics *metrics.Metrics
}

func NewService(repo repository.ReagentRepository, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		cache:   cache.New(catalogTTL, cleanupInterval),
		metrics: m,
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateReagentRequest) (*model.Reagent, error) {
	now := time.Now()
	reagent := &model.Reagent{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Vendor:      req.Vendor,
		ReagentType: req.ReagentType,
		LotNumber:   req.LotNumber,
		ExpiryDate:  req.ExpiryDate,
		Remarks:     req.Remarks,
	}

	if err := s.repo.Create(ctx, reagent); err != nil {
		return nil, fmt.Errorf("failed to create reagent: %w", err)
	}
	s.cache.Delete(catalogKey)
	return reagent, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Reagent, error) {
	reagent, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reagent: %w", err)
	}
	return reagent, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateReagentRequest) (*model.Reagent, error) {
	reagent, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reagent: %w", err)
	}

	if req.Name != nil {
		reagent.Name = *req.Name
	}
	if req.Vendor != nil {
		reagent.Vendor = *req.Vendor
	}
	if req.ReagentType != nil {
		reagent.ReagentType = *req.ReagentType
	}
	if req.LotNumber != nil {
		reagent.LotNumber = *req.LotNumber
	}
	if req.ExpiryDate != nil {
		reagent.ExpiryDate = *req.ExpiryDate
	}
	if req.Remarks != nil {
		reagent.Remarks = *req.Remarks
	}
	if req.Deleted != nil {
		reagent.Deleted = *req.Deleted
	}
	reagent.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, reagent); err != nil {
		return nil, fmt.Errorf("failed to update reagent: %w", err)
	}
	s.cache.Delete(catalogKey)
	return reagent, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete reagent: %w", err)
	}
	s.cache.Delete(catalogKey)
	return nil
}

// List filters the cached catalog snapshot. Filtering never mutates the
// snapshot, so sharing it between requests is safe.
func (s *Service) List(ctx context.Context, criteria filter.Criteria) ([]*model.Reagent, error) {
	reagents, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(reagents, criteria)
	if s.metrics != nil {
		s.metrics.ListFiltered.WithLabelValues("reagent").Add(float64(len(filtered)))
	}
	return filtered, nil
}

func (s *Service) snapshot(ctx context.Context) ([]*model.Reagent, error) {
	if cached, ok := s.cache.Get(catalogKey); ok {
		if s.metrics != nil {
			s.metrics.CacheHits.WithLabelValues("reagent").Inc()
		}
		return cached.([]*model.Reagent), nil
	}

	if s.metrics != nil {
		s.metrics.CacheMisses.WithLabelValues("reagent").Inc()
	}
	reagents, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reagents: %w", err)
	}
	s.cache.Set(catalogKey, reagents, cache.DefaultExpiration)
	return reagents, nil
}
