package queries

import (
	"time"

	"agendamento-api/internal/domain/appointment"
)

// ServiceView mirrors the catalog row; field names follow the public JSON keys.
type ServiceView struct {
	IDServico   int32  `json:"id_servico"`
	NomeServico string `json:"nome_servico"`
}

type AppointmentView struct {
	ID         int32     `json:"id"`
	ClientName string    `json:"nome"`
	Phone      string    `json:"telefone"`
	Service    string    `json:"servico"`
	Date       string    `json:"data"`
	Time       string    `json:"hora"`
	CreatedAt  time.Time `json:"criado_em"`
}

func NewAppointmentView(a *appointment.Appointment) AppointmentView {
	return AppointmentView{
		ID:         a.ID(),
		ClientName: a.ClientName(),
		Phone:      a.Phone(),
		Service:    a.Service(),
		Date:       a.Date().String(),
		Time:       a.Time().String(),
		CreatedAt:  a.CreatedAt(),
	}
}

type OccupiedSlotView struct {
	Time       string `json:"hora"`
	ClientName string `json:"nome"`
	Service    string `json:"servico"`
}

func NewOccupiedSlotView(s appointment.OccupiedSlot) OccupiedSlotView {
	return OccupiedSlotView{
		Time:       s.Time.String(),
		ClientName: s.ClientName,
		Service:    s.Service,
	}
}

// AvailabilityView lists the taken slots of one date, ascending by time.
type AvailabilityView struct {
	Date  string             `json:"data"`
	Total int                `json:"total_agendamentos"`
	Slots []OccupiedSlotView `json:"horarios_ocupados"`
}

type HealthView struct {
	Status    string    `json:"status"`
	Database  string    `json:"banco"`
	Timestamp time.Time `json:"timestamp"`
}
