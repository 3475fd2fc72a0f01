//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("issued token validates and carries the subject", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken("admin")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return base }

		token, err := svc.GenerateToken("admin")
		require.NoError(t, err)

		svc.now = func() time.Time { return base.Add(2 * time.Minute) }
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken("admin")
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token without admin role is rejected", func(t *testing.T) {
		claims := Claims{
			Role: "viewer",
			RegisteredClaims: gojwt.RegisteredClaims{
				Subject:   "someone",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
