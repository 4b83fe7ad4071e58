package components

import (
	"agendamento-api/internal/infra/readstore"
	"agendamento-api/internal/infra/repository"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/infra/uow"
	"agendamento-api/internal/usecase/queries"
	"agendamento-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	fx.Annotate(
		NewPinger,
		fx.As(new(queries.Pinger)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Service catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Occupied slots
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewSlotReadStore,
			fx.As(new(shared.SlotReader)),
		),
		// Appointment listing
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.AppointmentWriteQueries)),
		),
		fx.Annotate(
			repository.NewAppointmentRepository,
			fx.As(new(shared.AppointmentRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewPinger(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
