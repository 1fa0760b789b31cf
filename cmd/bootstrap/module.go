package bootstrap

import (
	"github.com/B1gB4dB4ng/HotelApp/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	MessagingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	WorkerModule,
	components.HandlerModule,
)
