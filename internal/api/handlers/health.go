package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ServerID string
	Version  string
}

func NewHealthHandler(serverID, version string) *HealthHandler {
	return &HealthHandler{ServerID: serverID, Version: version}
}

type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	ServerID string `json:"server_id" example:"realert-1"`
}

type ServiceInfoResponse struct {
	ServerID     string   `json:"server_id" example:"realert-1"`
	Status       string   `json:"status" example:"running"`
	Version      string   `json:"version" example:"1.0.0"`
	Capabilities []string `json:"capabilities"`
}

// @Summary Health check
// @Description Check if the server is healthy and responsive
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		ServerID: h.ServerID,
	})
}

// @Summary Service information
// @Description Get basic service information and capabilities
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (h *HealthHandler) ServiceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, ServiceInfoResponse{
		ServerID: h.ServerID,
		Status:   "running",
		Version:  h.Version,
		Capabilities: []string{
			"event_intake",
			"sms_fanout",
			"live_alert_feed",
		},
	})
}
