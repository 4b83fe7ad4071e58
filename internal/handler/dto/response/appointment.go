package response

import (
	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/usecase/queries"
)

type BookingResponse struct {
	Success bool                    `json:"sucesso"`
	ID      int32                   `json:"id"`
	Message string                  `json:"mensagem"`
	Data    queries.AppointmentView `json:"dados"`
}

func FromBookedAppointment(a *appointment.Appointment) *BookingResponse {
	return &BookingResponse{
		Success: true,
		ID:      a.ID(),
		Message: "Agendamento realizado com sucesso",
		Data:    queries.NewAppointmentView(a),
	}
}

type DeleteResponse struct {
	Success     bool                    `json:"sucesso"`
	Message     string                  `json:"mensagem"`
	Appointment queries.AppointmentView `json:"agendamento"`
}

func FromDeletedAppointment(a *appointment.Appointment) *DeleteResponse {
	return &DeleteResponse{
		Success:     true,
		Message:     "Agendamento removido com sucesso",
		Appointment: queries.NewAppointmentView(a),
	}
}

type AppointmentListResponse struct {
	Total        int                       `json:"total"`
	Appointments []queries.AppointmentView `json:"agendamentos"`
}

func FromAppointmentViews(views []queries.AppointmentView) *AppointmentListResponse {
	if views == nil {
		views = []queries.AppointmentView{}
	}
	return &AppointmentListResponse{
		Total:        len(views),
		Appointments: views,
	}
}
