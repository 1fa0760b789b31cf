package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/handler/httperr"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/redis"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limit exceeded")

type RateLimiter interface {
	Take(ctx context.Context, key string, now time.Time) (redis.Decision, error)
}

type RateLimitMiddleware struct {
	limiter RateLimiter
	clock   clock.Clock
	enabled bool
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig, limiter RateLimiter, clk clock.Clock) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		clock:   clk,
		enabled: cfg.Enabled && limiter != nil,
	}
}

// Limit takes one token per request, keyed by client, actor and route.
// Limiter errors let the request through.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		key := rateKey(c)
		d, err := m.limiter.Take(c.Request.Context(), key, m.clock.Now())
		if err != nil {
			slog.Warn("Rate limiter unavailable, allowing request", "key", key, "error", err.Error())
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(d.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))

		if !d.Allowed {
			secs := int(math.Ceil(d.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(secs))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Rate limit exceeded", gin.H{"retry_after": secs})
			return
		}
		c.Next()
	}
}

func rateKey(c *gin.Context) string {
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	uid := "anon"
	if id, ok := GetUserID(c); ok {
		uid = id.String()
	}
	return strings.Join([]string{"ip", ip, "user", uid, "route", c.Request.Method + " " + c.FullPath()}, ":")
}
