package components

import (
	"wheel-promo-api/internal/domain/wheel"
	"wheel-promo-api/internal/pkg/clock"
	"wheel-promo-api/internal/usecase"
	"wheel-promo-api/internal/usecase/commands"
	"wheel-promo-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	wheel.NewSelector,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewWheelQueries,
		queries.NewCouponQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewWheelCommands,
		commands.NewClaimCommands,
		commands.NewSegmentCommands,
		commands.NewCouponCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
