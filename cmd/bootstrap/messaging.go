package bootstrap

import (
	"context"

	"github.com/B1gB4dB4ng/HotelApp/internal/infra/messaging/rabbitmq"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

// The broker is dialed on first publish; the outbox keeps messages until it is reachable.
func NewPublisher(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) *rabbitmq.Publisher {
	p := rabbitmq.NewPublisher(cfg.AMQP, clk)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}
