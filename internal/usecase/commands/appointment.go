package commands

import (
	"context"
	"log/slog"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/infra"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/pkg/errs"
	"agendamento-api/internal/pkg/metrics"
	"agendamento-api/internal/usecase/shared"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/commands/appointment.go -package=commandsmock

var (
	ErrSlotTaken           = errs.ErrSlotTaken
	ErrAppointmentNotFound = errs.ErrAppointmentNotFound
)

type BookingResult struct {
	Appointment *appointment.Appointment
}

type AppointmentCommands interface {
	Book(ctx context.Context, req appointment.BookingRequest) (*BookingResult, error)
	Delete(ctx context.Context, id int32) (*appointment.Appointment, error)
}

type appointmentUseCaseImpl struct {
	uow          shared.UnitOfWork
	repo         shared.AppointmentRepository
	availability *shared.AvailabilityResolver
}

func NewAppointmentUseCase(
	uow shared.UnitOfWork,
	repo shared.AppointmentRepository,
	availability *shared.AvailabilityResolver,
) AppointmentCommands {
	return &appointmentUseCaseImpl{
		uow:          uow,
		repo:         repo,
		availability: availability,
	}
}

// Book validates the request and, in one transaction, resolves the service,
// checks the slot and inserts. Either exactly one row is written or none.
func (uc *appointmentUseCaseImpl) Book(ctx context.Context, req appointment.BookingRequest) (*BookingResult, error) {
	booking, err := appointment.Validate(req)
	if err != nil {
		metrics.RecordBooking(metrics.OutcomeRejectedValidation)
		return nil, err
	}

	var created *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Reads().ServiceByName(ctx, booking.Service)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return appointment.NewUnknownServiceError()
			}
			return err
		}
		booking = booking.WithService(svc.Name)

		taken, err := uc.availability.IsOccupied(ctx, tx.Reads(), booking.Slot)
		if err != nil {
			if infra.IsKind(err, infra.KindInvalidValue) {
				return appointment.NewInvalidDateError()
			}
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		a, err := tx.Appointments().Create(ctx, tx.DB(), booking)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				// Lost the race to a concurrent booking of the same slot.
				return errs.Mark(err, ErrSlotTaken)
			case infra.IsKind(err, infra.KindInvalidValue):
				return appointment.NewInvalidDateError()
			}
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		recordBookingFailure(err)
		return nil, err
	}

	metrics.RecordBooking(metrics.OutcomeCreated)
	slog.Info("appointment booked",
		"id", created.ID(),
		"service", created.Service(),
		"slot", created.Slot().String())

	return &BookingResult{Appointment: created}, nil
}

// Delete removes the appointment unconditionally. Deleting an id twice yields
// ErrAppointmentNotFound the second time.
func (uc *appointmentUseCaseImpl) Delete(ctx context.Context, id int32) (*appointment.Appointment, error) {
	var deleted *appointment.Appointment
	err := uc.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		a, err := uc.repo.Delete(ctx, db, id)
		if err != nil {
			return err
		}
		deleted = a
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, err
	}

	metrics.AppointmentsDeleted.Inc()
	slog.Info("appointment deleted", "id", deleted.ID(), "slot", deleted.Slot().String())
	return deleted, nil
}

func recordBookingFailure(err error) {
	var verr *appointment.ValidationError
	switch {
	case errs.As(err, &verr):
		metrics.RecordBooking(metrics.OutcomeRejectedValidation)
	case errs.Is(err, ErrSlotTaken):
		metrics.RecordBooking(metrics.OutcomeRejectedConflict)
	default:
		metrics.RecordBooking(metrics.OutcomeError)
	}
}
