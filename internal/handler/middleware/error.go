package middleware

import (
	"log/slog"
	"net/http"

	"agendamento-api/internal/handler/httperr"
	"agendamento-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Erro interno do servidor"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError,
			httperr.New(http.StatusInternalServerError, httperr.KindStorageUnavailable, internalErrorMessage))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(errs.New("panic"), 12))

				resp := httperr.New(http.StatusInternalServerError, httperr.KindStorageUnavailable, internalErrorMessage)
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
