package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haemolab/lab-api/internal/email"
	"github.com/haemolab/lab-api/internal/model"
	"github.com/haemolab/lab-api/internal/repository"
	"github.com/haemolab/lab-api/pkg/auth"
	apperrors "github.com/haemolab/lab-api/pkg/errors"
	"github.com/haemolab/lab-api/pkg/metrics"
	"github.com/haemolab/lab-api/pkg/security"
)

const (
	maxLoginAttempts = 5
	lockoutDuration  = 15 * time.Minute
	resetTokenTTL    = 30 * time.Minute
)

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service struct {
	accounts   repository.AccountRepository
	tokens     auth.TokenService
	refreshes  repository.TokenRepository
	hasher     security.PasswordHasher
	codec      *security.Codec
	email      email.Service
	metrics    *metrics.Metrics
	refreshTTL time.Duration
	resetBase  string
}

func NewService(
	accounts repository.AccountRepository,
	tokens auth.TokenService,
	refreshes repository.TokenRepository,
	hasher security.PasswordHasher,
	codec *security.Codec,
	emailSvc email.Service,
	m *metrics.Metrics,
	refreshTTL time.Duration,
	resetBase string,
) *Service {
	return &Service{
		accounts:   accounts,
		tokens:     tokens,
		refreshes:  refreshes,
		hasher:     hasher,
		codec:      codec,
		email:      emailSvc,
		metrics:    m,
		refreshTTL: refreshTTL,
		resetBase:  resetBase,
	}
}

// Login verifies the credentials and issues a token pair. Accounts lock for
// lockoutDuration after maxLoginAttempts consecutive failures; the error is
// the same for a wrong password and an unknown email.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*TokenPair, *model.Account, error) {
	account, err := s.accounts.GetByEmail(ctx, emailAddr)
	if err != nil {
		s.recordFailure()
		return nil, nil, apperrors.Unauthorized(err)
	}
	if account.Deleted.Bool() {
		s.recordFailure()
		return nil, nil, apperrors.Unauthorized(nil)
	}

	if locked, until := s.lockedUntil(account); locked {
		s.recordFailure()
		return nil, nil, apperrors.Forbidden(fmt.Errorf("account locked until %s", until.Format(time.RFC3339)))
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		now := time.Now()
		account.LoginAttempts++
		account.LastLoginAttempt = &now
		if err := s.accounts.Update(ctx, account); err != nil {
			return nil, nil, fmt.Errorf("failed to record login attempt: %w", err)
		}
		if account.LoginAttempts >= maxLoginAttempts && s.metrics != nil {
			s.metrics.AccountLockouts.Inc()
		}
		s.recordFailure()
		return nil, nil, apperrors.Unauthorized(nil)
	}

	now := time.Now()
	account.LoginAttempts = 0
	account.LastLoginAttempt = nil
	account.LastLoginAt = &now
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, nil, fmt.Errorf("failed to record login: %w", err)
	}

	pair, err := s.issuePair(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return pair, account, nil
}

// Refresh rotates the refresh token. The presented token must be the one
// currently stored for the user; rotation revokes it even if issuing the
// replacement fails.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	valid, err := s.refreshes.Valid(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, apperrors.Unauthorized(nil)
	}

	account, err := s.accounts.Get(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	if account.Deleted.Bool() {
		return nil, apperrors.Unauthorized(nil)
	}

	if err := s.refreshes.Revoke(ctx, claims.UserID); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return s.issuePair(ctx, account)
}

// Logout revokes the stored refresh token; outstanding access tokens simply
// age out.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.refreshes.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RequestPasswordReset mails a reset link carrying an encrypted, expiring
// token. An unknown email reports success so the endpoint cannot be used to
// probe for accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	account, err := s.accounts.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil
	}

	expiry := time.Now().Add(resetTokenTTL).Unix()
	token, err := s.codec.EncryptForURL(fmt.Sprintf("%s|%d", account.ID, expiry))
	if err != nil {
		return fmt.Errorf("failed to build reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.resetBase, token)
	if err := s.email.SendPasswordReset(ctx, account.Email, link); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}
	return nil
}

// ResetPassword redeems a reset token. An undecodable token is treated the
// same as an expired one.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	payload, ok := s.codec.SafeDecryptFromURL(token)
	if !ok {
		return apperrors.Unauthorized(nil)
	}

	idPart, expiryPart, found := strings.Cut(payload, "|")
	if !found {
		return apperrors.Unauthorized(nil)
	}
	expiry, err := strconv.ParseInt(expiryPart, 10, 64)
	if err != nil || time.Now().Unix() > expiry {
		return apperrors.Unauthorized(nil)
	}
	userID, err := uuid.Parse(idPart)
	if err != nil {
		return apperrors.Unauthorized(nil)
	}

	account, err := s.accounts.Get(ctx, userID)
	if err != nil {
		return apperrors.Unauthorized(err)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = hash
	account.LoginAttempts = 0
	account.LastLoginAttempt = nil
	account.UpdatedAt = time.Now()

	if err := s.accounts.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Force a fresh login everywhere once the password changes.
	if err := s.refreshes.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *Service) issuePair(ctx context.Context, account *model.Account) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}
	if err := s.refreshes.Save(ctx, account.ID, refresh, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) lockedUntil(account *model.Account) (bool, time.Time) {
	if account.LoginAttempts < maxLoginAttempts || account.LastLoginAttempt == nil {
		return false, time.Time{}
	}
	until := account.LastLoginAttempt.Add(lockoutDuration)
	if time.Now().After(until) {
		return false, time.Time{}
	}
	return true, until
}

func (s *Service) recordFailure() {
	if s.metrics != nil {
		s.metrics.LoginFailures.Inc()
	}
}
