package components

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/handler"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/api"
	"github.com/B1gB4dB4ng/HotelApp/internal/handler/middleware"
	"github.com/B1gB4dB4ng/HotelApp/internal/infra/receipt"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			NewReceiptBuilder,
			fx.As(new(api.ReceiptRenderer)),
		),
		api.NewBookingHandler,
		api.NewPaymentHandler,
		api.NewReviewHandler,
		api.NewHotelHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewRateLimitMiddleware,
	),
	fx.Invoke(NewRouter),
)

func NewReceiptBuilder(cfg config.Config) *receipt.Builder {
	return receipt.NewBuilder(cfg.Worker.Location())
}

func NewRateLimitMiddleware(cfg config.Config, limiter middleware.RateLimiter, clk clock.Clock) *middleware.RateLimitMiddleware {
	return middleware.NewRateLimitMiddleware(cfg.RateLimit, limiter, clk)
}

type routerParams struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Booking   *api.BookingHandler
	Payment   *api.PaymentHandler
	Review    *api.ReviewHandler
	Hotel     *api.HotelHandler
	Admin     *api.AdminHandler
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

func NewRouter(p routerParams) {
	handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{
			Booking: p.Booking,
			Payment: p.Payment,
			Review:  p.Review,
			Hotel:   p.Hotel,
			Admin:   p.Admin,
		},
		handler.Middlewares{
			Auth:      p.Auth,
			RateLimit: p.RateLimit,
		},
	)
}
