package api

import (
	"net/http"
	"strings"

	"github.com/B1gB4dB4ng/HotelApp/internal/domain/user"
	reqdto "github.com/B1gB4dB4ng/HotelApp/internal/handler/dto/request"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey   = "Idempotency-Key"
	headerIdempotentReplay = "Idempotent-Replay"
)

var (
	errUnauthenticated       = errs.New("no authenticated actor")
	errInvalidIdempotencyKey = errs.Define("Idempotency-Key must be a UUID", errs.ErrInvalidInput)
)

// requireActor aborts with 401 when the route was reached without RequireAuth.
func requireActor(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := reqdto.ParseID(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid request", err.Error())
}

// idempotencyKey returns nil when the header is absent.
func idempotencyKey(c *gin.Context) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.GetHeader(headerIdempotencyKey))
	if raw == "" {
		return nil, true
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		httperr.Respond(c, errInvalidIdempotencyKey)
		return nil, false
	}
	return &key, true
}

func markReplay(c *gin.Context, replayed bool) {
	if replayed {
		c.Header(headerIdempotentReplay, "true")
	}
}
