package components

import (
	"agendamento-api/internal/pkg/clock"
	"agendamento-api/internal/usecase/commands"
	"agendamento-api/internal/usecase/queries"
	"agendamento-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewAvailabilityResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAppointmentUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewServiceQueries,
		queries.NewAppointmentQueries,
		queries.NewHealthQueries,
	),
)
