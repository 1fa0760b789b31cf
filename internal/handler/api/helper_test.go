//go:build unit

package api_test

import (
	"net/http"
	"strings"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	guestToken = "guest-token"
	adminToken = "admin-token"
)

var (
	guestActor = user.NewActor(uuid.MustParse("11111111-1111-1111-1111-111111111111"), user.RoleGuest)
	adminActor = user.NewActor(uuid.MustParse("22222222-2222-2222-2222-222222222222"), user.RoleAdmin)
)

// fakeAuth resolves the two fixed bearer tokens to actors without a JWT round trip.
func fakeAuth(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	switch token {
	case guestToken:
		middleware.SetActor(c, guestActor)
	case adminToken:
		middleware.SetActor(c, adminActor)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}
