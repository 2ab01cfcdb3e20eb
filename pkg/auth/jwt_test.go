package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(accessTTL time.Duration) TokenService {
	return NewJWTService(Config{
		Secret:        "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     accessTTL,
		RefreshTTL:    time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService(time.Minute)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "ROLE_ADMIN")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ROLE_ADMIN", claims.Role)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	svc := testService(time.Minute)

	refresh, err := svc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateAccessToken(uuid.New(), "ROLE_STAFF")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestGarbageToken(t *testing.T) {
	svc := testService(time.Minute)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
