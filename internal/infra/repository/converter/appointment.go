package converter

import (
	"agendamento-api/internal/domain/appointment"
	sqlc "agendamento-api/internal/infra/sqlc/generated"
	"agendamento-api/internal/pkg/pgconv"
)

func BookingToCreateParams(b appointment.NormalizedBooking) sqlc.CreateAgendamentoParams {
	return sqlc.CreateAgendamentoParams{
		Nome:     b.Name.String(),
		Telefone: b.Phone.String(),
		Servico:  b.Service,
		Data:     b.Slot.Date.String(),
		Hora:     b.Slot.Time.SQLValue(),
	}
}

// AppointmentFromRow rebuilds the entity from a stored row. A DATE column
// always renders in the validated layout, so the parse cannot fail for rows
// the store produced.
func AppointmentFromRow(row sqlc.Agendamento) (*appointment.Appointment, error) {
	date, err := appointment.ParseDate(pgconv.DateStringFromPgtype(row.Data))
	if err != nil {
		return nil, err
	}
	slot := appointment.Slot{
		Date: date,
		Time: appointment.TimeOfDayFromMicros(pgconv.MicrosFromPgtype(row.Hora)),
	}
	return appointment.ReconstructAppointment(
		row.ID,
		row.Nome,
		row.Telefone,
		row.Servico,
		slot,
		pgconv.TimeFromPgtype(row.CriadoEm),
	), nil
}

func OccupiedSlotFromRow(row sqlc.ListHorariosOcupadosRow) appointment.OccupiedSlot {
	return appointment.OccupiedSlot{
		Time:       appointment.TimeOfDayFromMicros(pgconv.MicrosFromPgtype(row.Hora)),
		ClientName: row.Nome,
		Service:    row.Servico,
	}
}
