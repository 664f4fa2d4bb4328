//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", "storefront-auth")
	userID := uuid.New()

	t.Run("valid token round trips the user id", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "customer", time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "customer", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, "customer", -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewService("other", "storefront-auth")
		token, err := other.GenerateToken(userID, "customer", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		other := jwt.NewService("secret", "someone-else")
		token, err := other.GenerateToken(userID, "customer", time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
