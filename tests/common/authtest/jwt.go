//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the identity service would, with the shared secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := h.service(duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(-time.Minute).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) service(d time.Duration) *jwt.Service {
	if h.cfg.Issuer != "" {
		return jwt.NewService(h.cfg.Secret, d, jwt.WithIssuer(h.cfg.Issuer))
	}
	return jwt.NewService(h.cfg.Secret, d)
}
