package bootstrap

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/clock"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		clock.NewRealClock,
	),
)
