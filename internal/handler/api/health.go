package api

import (
	"net/http"

	resdto "agendamento-api/internal/handler/dto/response"
	"agendamento-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	q queries.HealthQueries
}

func NewHealthHandler(q queries.HealthQueries) *HealthHandler {
	return &HealthHandler{q: q}
}

// @Summary Health check
// @Description Reports whether the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} queries.HealthView
// @Failure 500 {object} resdto.HealthErrorResponse
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	view, err := h.q.Check(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, resdto.HealthErrorResponse{
			Status:   "erro",
			Database: queries.DatabaseUnreachable,
			Message:  msgStorageDetail,
		})
		return
	}
	c.JSON(http.StatusOK, view)
}
