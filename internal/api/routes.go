package api

import (
	"realert-server/internal/api/middleware"
	"realert-server/internal/obs"

	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.ServiceInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(obs.Handler()))

	organizations := s.router.Group("/organizations")
	{
		organizations.POST("", s.orgHandler.CreateOrganization)
		organizations.GET("", s.orgHandler.ListOrganizations)
	}

	contacts := s.router.Group("/contacts")
	{
		contacts.POST("", s.contactHandler.CreateContact)
		contacts.GET("", s.contactHandler.ListContacts)
		contacts.DELETE("", s.contactHandler.DeleteContacts)
	}

	sensors := s.router.Group("/sensors")
	{
		sensors.POST("", s.sensorHandler.CreateSensor)
		sensors.GET("", s.sensorHandler.ListSensors)
	}

	events := s.router.Group("/events")
	{
		events.POST("", middleware.RateLimit(s.config.IntakeRatePerSec, s.config.IntakeBurst), s.eventHandler.ReportEvent)
		events.GET("/latest", s.eventHandler.LatestEvent)
		events.DELETE("", s.eventHandler.DeleteEvents)
	}
}
