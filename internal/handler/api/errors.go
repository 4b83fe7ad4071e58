package api

import (
	"net/http"

	"agendamento-api/internal/domain/appointment"
	"agendamento-api/internal/handler/httperr"
	"agendamento-api/internal/pkg/errs"
	"agendamento-api/internal/usecase/commands"
	"agendamento-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgSlotTaken        = "Horário já está ocupado para esta data"
	msgNotFound         = "Agendamento não encontrado"
	msgInvalidBody      = "Corpo da requisição inválido"
	msgInvalidID        = "ID inválido"
	msgInvalidLimit     = "Parâmetro 'limite' deve ser numérico"
	msgDateRequired     = "Parâmetro 'data' é obrigatório"
	msgInternal         = "Erro ao processar a solicitação"
	msgStorageDetail    = "Falha ao acessar o banco de dados. Tente novamente."
	availabilityExample = "2025-11-10"
)

// abortWithUseCaseError maps use-case failures onto the public taxonomy.
// Storage details never reach the client; they are logged where they occur.
func abortWithUseCaseError(c *gin.Context, err error) {
	httperr.AbortWithError(c, err, responseFor(err))
}

func responseFor(err error) httperr.Response {
	var verr *appointment.ValidationError
	switch {
	case errs.As(err, &verr):
		return validationResponse(verr)
	case errs.Is(err, commands.ErrSlotTaken):
		return httperr.New(http.StatusConflict, httperr.KindSlotConflict, msgSlotTaken).
			WithFields(appointment.FieldDate, appointment.FieldTime)
	case errs.Is(err, commands.ErrAppointmentNotFound):
		return httperr.New(http.StatusNotFound, httperr.KindNotFound, msgNotFound)
	case errs.Is(err, queries.ErrDateRequired):
		return httperr.New(http.StatusBadRequest, httperr.KindValidation, msgDateRequired).
			WithFields(appointment.FieldDate)
	default:
		return httperr.New(http.StatusInternalServerError, httperr.KindStorageUnavailable, msgInternal).
			WithDetail(msgStorageDetail)
	}
}

func validationResponse(verr *appointment.ValidationError) httperr.Response {
	return httperr.New(http.StatusBadRequest, httperr.KindValidation, verr.Message()).
		WithReason(string(verr.Kind)).
		WithFields(verr.Fields...)
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.KindValidation, msg))
}
