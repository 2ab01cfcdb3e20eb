package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/email"
	"github.com/haemolab/lab-api/internal/filter"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
	"github.com/haemolab/lab-api/pkg/metrics"
	"github.com/haemolab/lab-api/pkg/security"
)

type Service struct {
	repo    repository.AccountRepository
	hasher  security.PasswordHasher
	email   email.Service
	metrics *metrics.Metrics
}

func NewService(repo repository.AccountRepository, hasher security.PasswordHasher, emailSvc email.Service, m *metrics.Metrics) *Service {
	return &Service{repo: repo, hasher: hasher, email: emailSvc, metrics: m}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAccountRequest) (*model.Account, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	account := &model.Account{
		Base: model.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	// Welcome mail is best effort; account creation already succeeded.
	if s.email != nil {
		_ = s.email.SendWelcome(ctx, account.Email, account.FullName)
	}
	return account, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAccountRequest) (*model.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if req.FullName != nil {
		account.FullName = *req.FullName
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Role != nil {
		account.Role = *req.Role
	}
	if req.Deleted != nil {
		account.Deleted = *req.Deleted
	}
	account.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

// Deactivate soft-deletes the account; it stays listed under the
// "inactive" status filter.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	account.Deleted = true
	account.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// List fetches all accounts and applies the console's list filters in
// memory, preserving repository order.
func (s *Service) List(ctx context.Context, criteria filter.Criteria) ([]*model.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	filtered := filter.Apply(accounts, criteria)
	if s.metrics != nil {
		s.metrics.ListFiltered.WithLabelValues("account").Add(float64(len(filtered)))
	}
	return filtered, nil
}
