package queries

import (
	"context"
	"strings"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/infra"
	"agendamento-api/internal/pkg/errs"
	"agendamento-api/internal/usecase/shared"
)

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment.go -package=queriesmock

const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

var ErrDateRequired = errs.ErrDateRequired

type AppointmentReadStore interface {
	ListRecent(ctx context.Context, limit int32) ([]AppointmentView, error)
}

type AppointmentQueries interface {
	ListRecent(ctx context.Context, limit int) ([]AppointmentView, error)
	Availability(ctx context.Context, rawDate string) (*AvailabilityView, error)
}

type appointmentQueriesImpl struct {
	store        AppointmentReadStore
	slots        shared.SlotReader
	availability *shared.AvailabilityResolver
}

func NewAppointmentQueries(
	store AppointmentReadStore,
	slots shared.SlotReader,
	availability *shared.AvailabilityResolver,
) AppointmentQueries {
	return &appointmentQueriesImpl{
		store:        store,
		slots:        slots,
		availability: availability,
	}
}

func (q *appointmentQueriesImpl) ListRecent(ctx context.Context, limit int) ([]AppointmentView, error) {
	return q.store.ListRecent(ctx, ValidateLimit(limit))
}

// Availability reports the occupied slots of rawDate. The date is checked for
// shape only; a well-formed but impossible date is rejected by the store.
func (q *appointmentQueriesImpl) Availability(ctx context.Context, rawDate string) (*AvailabilityView, error) {
	rawDate = strings.TrimSpace(rawDate)
	if rawDate == "" {
		return nil, ErrDateRequired
	}
	date, err := appointment.ParseDate(rawDate)
	if err != nil {
		return nil, appointment.NewInvalidDateError()
	}

	slots, err := q.availability.OccupiedSlots(ctx, q.slots, date)
	if err != nil {
		if infra.IsKind(err, infra.KindInvalidValue) {
			return nil, appointment.NewInvalidDateError()
		}
		return nil, err
	}

	views := make([]OccupiedSlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, NewOccupiedSlotView(s))
	}
	return &AvailabilityView{
		Date:  date.String(),
		Total: len(views),
		Slots: views,
	}, nil
}

// ValidateLimit maps non-positive values to the default and caps the rest.
func ValidateLimit(limit int) int32 {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return int32(limit) // #nosec G115 -- bounded above
}
