package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"realert-server/internal/api/handlers"
	"realert-server/internal/api/middleware"
	"realert-server/internal/config"
	"realert-server/internal/services"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler  *handlers.HealthHandler
	orgHandler     *handlers.OrganizationHandler
	contactHandler *handlers.ContactHandler
	sensorHandler  *handlers.SensorHandler
	eventHandler   *handlers.EventHandler
}

func NewServer(cfg *config.Config, container *services.ServiceContainer) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	return &Server{
		config:         cfg,
		router:         router,
		healthHandler:  handlers.NewHealthHandler(cfg.ServerID, cfg.Version),
		orgHandler:     handlers.NewOrganizationHandler(container.Store),
		contactHandler: handlers.NewContactHandler(container.Store),
		sensorHandler:  handlers.NewSensorHandler(container.Store),
		eventHandler:   handlers.NewEventHandler(container.Intake, container.Store),
	}
}

func (s *Server) Setup() error {
	s.setupMiddleware()

	s.setupRoutes()

	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	return nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger())
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestID())
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting Realert API")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping Realert API")
	return s.server.Shutdown(ctx)
}

// Router exposes the underlying handler for tests
func (s *Server) Router() http.Handler {
	return s.router
}
