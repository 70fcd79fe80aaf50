package api

import (
	"fmt"
	"net/http"

	"realert-server/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", s.config.SwaggerHost, s.config.SwaggerPort)
	docs.SwaggerInfo.Version = s.config.Version

	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Realert API",
			"version":     s.config.Version,
			"description": "Threat-detection alert intake, debounce and SMS fan-out",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":        "/health",
				"organizations": "/organizations",
				"contacts":      "/contacts",
				"sensors":       "/sensors",
				"events":        "/events",
				"latest_event":  "/events/latest",
				"metrics":       "/metrics",
			},
			"server_id": s.config.ServerID,
			"port":      s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
