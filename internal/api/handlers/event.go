package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"realert-server/internal/logging"
	"realert-server/internal/models"
	"realert-server/internal/services/intake"
	"realert-server/internal/store"
)

type EventHandler struct {
	intake *intake.Service
	store  *store.Store
}

func NewEventHandler(intakeSvc *intake.Service, st *store.Store) *EventHandler {
	return &EventHandler{intake: intakeSvc, store: st}
}

type ReportEventRequest struct {
	RoomCode       string `json:"room_code" binding:"required"`
	Kind           string `json:"kind" binding:"required"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

type ReportEventResponse struct {
	Status  string `json:"status" example:"accepted"`
	EventID string `json:"event_id,omitempty"`
}

// ReportEvent ingests a detection signal
// @Summary Report a detection signal
// @Description Report a threat detection for a room. Accepted signals create an event and notify every registered contact; a signal arriving inside the debounce window of the previous accepted event is suppressed without side effects.
// @Tags events
// @Accept json
// @Produce json
// @Param request body ReportEventRequest true "Detection signal"
// @Success 200 {object} ReportEventResponse "Suppressed as a duplicate of a recent event"
// @Success 201 {object} ReportEventResponse "Accepted"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) ReportEvent(c *gin.Context) {
	var req ReportEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Error(c).Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.intake.ReportEvent(c.Request.Context(), models.DetectionSignal{
		RoomCode:       req.RoomCode,
		Kind:           models.SignalKind(req.Kind),
		OrganizationID: req.OrganizationID,
		ReceivedAt:     time.Now(),
	})
	switch {
	case errors.Is(err, intake.ErrEmptyRoomCode),
		errors.Is(err, intake.ErrUnknownSignalKind),
		errors.Is(err, intake.ErrUnknownOrganization):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logging.Error(c).Err(err).Str("room_code", req.RoomCode).Msg("Failed to report event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !result.Accepted {
		c.JSON(http.StatusOK, ReportEventResponse{Status: "suppressed"})
		return
	}

	c.JSON(http.StatusCreated, ReportEventResponse{Status: "accepted", EventID: result.EventID})
}

// LatestEvent returns the most recent event for an organization
// @Summary Latest event for an organization
// @Tags events
// @Produce json
// @Param organization_id query string true "Organization ID"
// @Success 200 {object} models.Event
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/latest [get]
func (h *EventHandler) LatestEvent(c *gin.Context) {
	orgID := c.Query("organization_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}

	event, err := h.store.LatestEventByOrganization(c.Request.Context(), orgID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No events found"})
		return
	}
	if err != nil {
		logging.Error(c).Err(err).Str("organization_id", orgID).Msg("Failed to query latest event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvents removes all events
// @Summary Delete all events
// @Description Administrative bulk clear of the event log
// @Tags events
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [delete]
func (h *EventHandler) DeleteEvents(c *gin.Context) {
	if err := h.store.DeleteEvents(c.Request.Context()); err != nil {
		logging.Error(c).Err(err).Msg("Failed to delete events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Info(c).Msg("All events deleted")
	c.JSON(http.StatusOK, gin.H{"message": "All events have been deleted"})
}
