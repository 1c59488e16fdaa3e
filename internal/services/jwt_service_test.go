package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	s := NewJWTService("test-secret", time.Hour)

	token, err := s.GenerateToken("session-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", claims.SessionID)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 2*time.Second)
}

func TestJWTService_ShouldRefresh(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewJWTService("test-secret", time.Hour).WithClock(func() time.Time { return now })

	token, err := s.GenerateToken("session-123")
	require.NoError(t, err)

	// --- Test Case 1: 発行直後は再発行しない ---
	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.False(t, s.ShouldRefresh(claims))

	// --- Test Case 2: 有効期間の半分を過ぎたら再発行する ---
	now = now.Add(31 * time.Minute)
	claims, err = s.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, s.ShouldRefresh(claims))

	// --- Test Case 3: 有効期間を過ぎたトークンは無効 ---
	now = now.Add(30 * time.Minute)
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	s := NewJWTService("test-secret", time.Hour)

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ValidateToken("invalid.jwt.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewJWTService("other-secret", time.Hour).GenerateToken("session-123")
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		issuer := NewJWTService("test-secret", time.Hour).WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
		token, err := issuer.GenerateToken("session-123")
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing sid", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing iat", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sid": "session-123",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sid": "session-123",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
