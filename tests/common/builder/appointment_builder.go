//go:build unit || e2e

package builder

import (
	"time"

	"agendamento-api/internal/domain/appointment"
	reqdto "agendamento-api/internal/handler/dto/request"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentBuilder struct {
	ID        int32
	Name      string
	Phone     string
	Service   string
	Date      string
	Time      string
	CreatedAt time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:        1,
		Name:      "Ana Silva",
		Phone:     "11999990000",
		Service:   "Corte",
		Date:      "2025-11-10",
		Time:      "14:00",
		CreatedAt: time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithID(id int32) *AppointmentBuilder {
	b.ID = id
	return b
}

func (b *AppointmentBuilder) WithName(name string) *AppointmentBuilder {
	b.Name = name
	return b
}

func (b *AppointmentBuilder) WithPhone(phone string) *AppointmentBuilder {
	b.Phone = phone
	return b
}

func (b *AppointmentBuilder) WithService(service string) *AppointmentBuilder {
	b.Service = service
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTime(tod string) *AppointmentBuilder {
	b.Time = tod
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildBookingRequest() appointment.BookingRequest {
	return appointment.BookingRequest{
		Name:    b.Name,
		Phone:   b.Phone,
		Service: b.Service,
		Date:    b.Date,
		Time:    b.Time,
	}
}

// BuildNormalized panics on invalid builder state; use it only with valid fields.
func (b *AppointmentBuilder) BuildNormalized() appointment.NormalizedBooking {
	nb, err := appointment.Validate(b.BuildBookingRequest())
	if err != nil {
		panic(err)
	}
	return nb
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	nb := b.BuildNormalized()
	return appointment.ReconstructAppointment(
		b.ID,
		nb.Name.String(),
		nb.Phone.String(),
		nb.Service,
		nb.Slot,
		b.CreatedAt,
	)
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Agendamento {
	nb := b.BuildNormalized()
	date, err := time.Parse("2006-01-02", nb.Slot.Date.String())
	if err != nil {
		panic(err)
	}
	return sqlc.Agendamento{
		ID:       b.ID,
		Nome:     nb.Name.String(),
		Telefone: nb.Phone.String(),
		Servico:  nb.Service,
		Data:     pgtype.Date{Time: date, Valid: true},
		Hora:     pgtype.Time{Microseconds: nb.Slot.Time.Micros(), Valid: true},
		CriadoEm: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *AppointmentBuilder) BuildOccupiedSlot() appointment.OccupiedSlot {
	nb := b.BuildNormalized()
	return appointment.OccupiedSlot{
		Time:       nb.Slot.Time,
		ClientName: nb.Name.String(),
		Service:    nb.Service,
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Nome:     b.Name,
		Telefone: b.Phone,
		Servico:  b.Service,
		Data:     b.Date,
		Hora:     b.Time,
	}
}

func (b *AppointmentBuilder) BuildView() queries.AppointmentView {
	return queries.NewAppointmentView(b.BuildDomain())
}
