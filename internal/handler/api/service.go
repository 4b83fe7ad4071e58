package api

import (
	"net/http"

	"agendamento-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	q queries.ServiceQueries
}

func NewServiceHandler(q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{q: q}
}

// @Summary List services
// @Description List every bookable service ordered by id
// @Tags servicos
// @Produce json
// @Success 200 {array} queries.ServiceView
// @Failure 500 {object} httperr.Response
// @Router /api/servicos [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if services == nil {
		services = []queries.ServiceView{}
	}
	c.JSON(http.StatusOK, services)
}
