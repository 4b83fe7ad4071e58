package repository

import (
	"context"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/infra"
	"agendamento-api/internal/infra/repository/converter"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/repository/appointment.go -package=repositorymock

type AppointmentWriteQueries interface {
	CreateAgendamento(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAgendamentoParams) (sqlc.Agendamento, error)
	DeleteAgendamento(ctx context.Context, db sqlc.DBTX, id int32) (sqlc.Agendamento, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
	}
}

// Create inserts one appointment. A concurrent booking of the same slot
// surfaces as KindDuplicateKey; a date the store cannot represent (2025-02-30)
// surfaces as KindInvalidValue.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, b appointment.NormalizedBooking) (*appointment.Appointment, error) {
	row, err := r.queries.CreateAgendamento(ctx, tx, converter.BookingToCreateParams(b))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	created, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read created appointment", err)
	}
	return created, nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int32) (*appointment.Appointment, error) {
	row, err := r.queries.DeleteAgendamento(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to delete appointment", err)
	}

	deleted, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read deleted appointment", err)
	}
	return deleted, nil
}
