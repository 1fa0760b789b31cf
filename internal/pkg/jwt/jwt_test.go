//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-secret"

func TestValidateToken(t *testing.T) {
	userID := uuid.New()

	t.Run("round trip keeps user and role", func(t *testing.T) {
		svc := jwt.NewService(secret, time.Hour)
		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, userID.String(), claims.Subject)
	})

	t.Run("expired beyond skew", func(t *testing.T) {
		token, err := jwt.NewService(secret, -time.Minute).GenerateToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("expired within skew is accepted", func(t *testing.T) {
		token, err := jwt.NewService(secret, -5*time.Second).GenerateToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.NoError(t, err)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		token, err := jwt.NewService(secret, time.Hour, jwt.WithIssuer("someone-else")).GenerateToken(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour, jwt.WithIssuer("identity")).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := jwt.Claims{
			UserID: userID,
			Role:   "guest",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := jwt.NewService(secret, time.Hour).GenerateToken(uuid.Nil, user.RoleGuest)
		require.NoError(t, err)

		_, err = jwt.NewService(secret, time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService(secret, time.Hour).ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
