package components

import (
	"agendamento-api/internal/handler"
	"agendamento-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewServiceHandler,
		api.NewAppointmentHandler,
		api.NewHealthHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(s *api.ServiceHandler, a *api.AppointmentHandler, h *api.HealthHandler) handler.Handlers {
	return handler.Handlers{
		Service:     s,
		Appointment: a,
		Health:      h,
	}
}
