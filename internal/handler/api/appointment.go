package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "agendamento-api/internal/handler/dto/request"
	resdto "agendamento-api/internal/handler/dto/response"
	"agendamento-api/internal/handler/httperr"
	"agendamento-api/internal/usecase/commands"
	"agendamento-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book an appointment
// @Description Create an appointment for a free (data, hora) slot
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/agendar [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	// An empty body is a request with every field missing.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			httperr.AbortWithError(c, err,
				httperr.New(http.StatusBadRequest, httperr.KindValidation, msgInvalidBody).WithFields(typeErr.Field))
			return
		}
		badRequest(c, err, msgInvalidBody)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), req.ToBookingRequest())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookedAppointment(result.Appointment))
}

// @Summary Occupied slots of a date
// @Tags agendamentos
// @Produce json
// @Param data query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/disponibilidade [get]
func (h *AppointmentHandler) Availability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	_ = c.ShouldBindQuery(&query)

	view, err := h.q.Availability(c.Request.Context(), query.Date)
	if err != nil {
		resp := responseFor(err)
		if resp.Status == http.StatusBadRequest {
			resp = resp.WithExample(availabilityExample)
		}
		httperr.AbortWithError(c, err, resp)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Recent appointments
// @Description Latest appointments ordered by date and time, newest first (max 100)
// @Tags agendamentos
// @Produce json
// @Param limite query int false "Maximum rows (1-100)"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/agendamentos [get]
func (h *AppointmentHandler) ListRecent(c *gin.Context) {
	var query reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err, msgInvalidLimit)
		return
	}

	views, err := h.q.ListRecent(c.Request.Context(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Delete an appointment
// @Tags agendamentos
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.DeleteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/agendamentos/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		badRequest(c, err, msgInvalidID)
		return
	}

	deleted, err := h.cmds.Delete(c.Request.Context(), int32(id))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeletedAppointment(deleted))
}
