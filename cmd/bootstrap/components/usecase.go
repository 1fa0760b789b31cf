package components

import (
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/commands"
	"github.com/B1gB4dB4ng/HotelApp/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewPaymentUseCase,
		commands.NewReviewUseCase,
		commands.NewRoomStatusUseCase,
		commands.NewHousekeepingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		queries.NewReviewQueries,
		queries.NewHotelQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
