package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realert-server/internal/logging"
	"realert-server/internal/models"
	"realert-server/internal/store"
)

type SensorHandler struct {
	store *store.Store
}

func NewSensorHandler(st *store.Store) *SensorHandler {
	return &SensorHandler{store: st}
}

type CreateSensorRequest struct {
	OrganizationID string `json:"organization_id" binding:"required"`
	RoomCode       string `json:"room_code" binding:"required"`
	Kind           string `json:"kind" binding:"required"`
}

// CreateSensor registers a detector endpoint for a room
// @Summary Register a sensor
// @Description Register a camera or audio detector watching a room
// @Tags sensors
// @Accept json
// @Produce json
// @Param request body CreateSensorRequest true "Sensor details"
// @Success 201 {object} models.Sensor
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sensors [post]
func (h *SensorHandler) CreateSensor(c *gin.Context) {
	var req CreateSensorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Error(c).Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := models.SignalKind(req.Kind)
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sensor kind"})
		return
	}

	sensor, err := h.store.CreateSensor(c.Request.Context(), models.Sensor{
		OrganizationID: req.OrganizationID,
		RoomCode:       req.RoomCode,
		Kind:           kind,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}
	if err != nil {
		logging.Error(c).Err(err).Str("room_code", req.RoomCode).Msg("Failed to create sensor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Info(c).
		Str("sensor_id", sensor.ID).
		Str("room_code", sensor.RoomCode).
		Str("kind", sensor.Kind.String()).
		Msg("Sensor registered")
	c.JSON(http.StatusCreated, sensor)
}

// ListSensors lists sensors for an organization
// @Summary List sensors
// @Tags sensors
// @Produce json
// @Param organization_id query string true "Organization ID"
// @Success 200 {array} models.Sensor
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors [get]
func (h *SensorHandler) ListSensors(c *gin.Context) {
	orgID := c.Query("organization_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}

	sensors, err := h.store.SensorsByOrganization(c.Request.Context(), orgID)
	if err != nil {
		logging.Error(c).Err(err).Str("organization_id", orgID).Msg("Failed to list sensors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sensors)
}
