package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService(t *testing.T) {
	svc, err := NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	t.Run("generate and validate", func(t *testing.T) {
		token, err := svc.Generate("uid-1", "ada@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "uid-1", claims.UID)
		assert.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewJWTService("other-secret", time.Hour)
		require.NoError(t, err)

		token, err := other.Generate("uid-1", "ada@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := NewJWTService("test-secret", -time.Minute)
		require.NoError(t, err)

		token, err := expired.Generate("uid-1", "ada@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("missing uid claim", func(t *testing.T) {
		token, err := svc.Generate("", "ada@example.com")
		require.NoError(t, err)

		_, err = svc.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService("", time.Hour)
	assert.Error(t, err)
}
