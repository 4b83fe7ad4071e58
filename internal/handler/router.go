package handler

import (
	"net/http"

	"agendamento-api/internal/handler/api"
	"agendamento-api/internal/handler/httperr"
	"agendamento-api/internal/handler/middleware"
	"agendamento-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Service     *api.ServiceHandler
	Appointment *api.AppointmentHandler
	Health      *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware())
	}
	engine.Use(middleware.RequestTimeout(cfg.Server.RequestTimeout))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/servicos", Handler: h.Service.List},
			{Method: http.MethodPost, Path: "/agendar", Handler: h.Appointment.Book},
			{Method: http.MethodGet, Path: "/disponibilidade", Handler: h.Appointment.Availability},
			{Method: http.MethodGet, Path: "/agendamentos", Handler: h.Appointment.ListRecent},
			{Method: http.MethodDelete, Path: "/agendamentos/:id", Handler: h.Appointment.Delete},
			{Method: http.MethodGet, Path: "/health", Handler: h.Health.Check},
		})
	}

	// gin answers an unknown method on a known path through NoRoute as well.
	engine.NoRoute(routeNotFound)
}

func routeNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, httperr.RouteNotFound{
		Message: "Rota não encontrada",
		Kind:    httperr.KindRouteNotFound,
		URL:     c.Request.URL.String(),
		Method:  c.Request.Method,
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
