package request

import "agendamento-api/internal/domain/appointment"

// Fields are validated by the domain so that every missing field can be
// reported at once; no binding tags here.
type CreateAppointmentRequest struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Servico  string `json:"servico"`
	Data     string `json:"data"`
	Hora     string `json:"hora"`
}

func (r *CreateAppointmentRequest) ToBookingRequest() appointment.BookingRequest {
	return appointment.BookingRequest{
		Name:    r.Nome,
		Phone:   r.Telefone,
		Service: r.Servico,
		Date:    r.Data,
		Time:    r.Hora,
	}
}

type ListAppointmentsQuery struct {
	Limit int `form:"limite"`
}

type AvailabilityQuery struct {
	Date string `form:"data"`
}
