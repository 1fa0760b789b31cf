//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/cookie"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/jwt"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase"
	"github.com/B1gB4dB4ng/HotelApp/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-middleware"

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService(testSecret, time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	echo := func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"actor": nil})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID.String(), "role": actor.Role.String()})
	}
	router.GET("/me", auth.RequireAuth(), echo)
	router.GET("/admin", auth.RequireAuth(), auth.RequireAdmin(), echo)
	router.GET("/public", auth.OptionalAuth(), echo)
	return router, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	guestID := uuid.New()
	token, err := svc.GenerateToken(guestID, user.RoleGuest)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, guestID.String(), body["id"])
		assert.Equal(t, "guest", body["role"])
	})

	t.Run("cookie", func(t *testing.T) {
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, err := jwt.NewService("another-secret", time.Hour).GenerateToken(guestID, user.RoleGuest)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, other)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token", func(t *testing.T) {
		expired, err := jwt.NewService(testSecret, -time.Minute).GenerateToken(guestID, user.RoleGuest)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, router, http.MethodGet, "/me", nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireAdmin(t *testing.T) {
	router, svc := newAuthRouter(t)

	guest, err := svc.GenerateToken(uuid.New(), user.RoleGuest)
	require.NoError(t, err)
	admin, err := svc.GenerateToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, guest)
	httptest.AssertErrorKind(t, w, http.StatusForbidden, "Forbidden")

	w = httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, admin)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
}

func TestOptionalAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	token, err := svc.GenerateToken(uuid.New(), user.RoleGuest)
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	assert.JSONEq(t, `{"actor":null}`, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, "garbage")
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	assert.JSONEq(t, `{"actor":null}`, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, token)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	assert.Contains(t, w.Body.String(), `"role":"guest"`)
}
