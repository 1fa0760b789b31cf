package handler

import (
	"net/http"

	"github.com/B1gB4dB4ng/HotelApp/internal/handler/api"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Payment *api.PaymentHandler
	Review  *api.ReviewHandler
	Hotel   *api.HotelHandler
	Admin   *api.AdminHandler
}

type Middlewares struct {
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limit := []gin.HandlerFunc{mw.RateLimit.Limit()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.List},
			{Method: http.MethodGet, Path: "/reviews/:id", Handler: h.Review.Get},
			{Method: http.MethodGet, Path: "/rooms/:id/availability", Handler: h.Hotel.RoomAvailability},
			{Method: http.MethodGet, Path: "/hotels/:id/rating", Handler: h.Hotel.Rating},
		})

		authed := apiGroup.Group("")
		authed.Use(mw.Auth.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: limit},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
			{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Booking.Update},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Booking.Update},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Cancel},

			{Method: http.MethodPost, Path: "/payments", Handler: h.Payment.Create, Mw: limit},
			{Method: http.MethodGet, Path: "/payments", Handler: h.Payment.List},
			{Method: http.MethodGet, Path: "/payments/:id", Handler: h.Payment.Get},
			{Method: http.MethodGet, Path: "/payments/:id/receipt", Handler: h.Payment.Receipt},

			{Method: http.MethodPost, Path: "/reviews", Handler: h.Review.Create, Mw: limit},
			{Method: http.MethodPut, Path: "/reviews/:id", Handler: h.Review.Update},
			{Method: http.MethodPatch, Path: "/reviews/:id", Handler: h.Review.Update},
			{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(mw.Auth.RequireAuth(), mw.Auth.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/reconcile", Handler: h.Admin.Reconcile},
			{Method: http.MethodGet, Path: "/jobs", Handler: h.Admin.ListJobs},
			{Method: http.MethodPost, Path: "/jobs/:name/run", Handler: h.Admin.RunJob},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
