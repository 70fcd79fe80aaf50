package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"realert-server/internal/logging"
	"realert-server/internal/store"
)

type OrganizationHandler struct {
	store *store.Store
}

func NewOrganizationHandler(st *store.Store) *OrganizationHandler {
	return &OrganizationHandler{store: st}
}

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateOrganization registers a new organization
// @Summary Register an organization
// @Description Create a new organization that owns contacts, sensors and events
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body CreateOrganizationRequest true "Organization name"
// @Success 201 {object} models.Organization
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Error(c).Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.store.CreateOrganization(c.Request.Context(), req.Name)
	if err != nil {
		logging.Error(c).Err(err).Str("name", req.Name).Msg("Failed to create organization")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Info(c).Str("organization_id", org.ID).Str("name", org.Name).Msg("Organization created")
	c.JSON(http.StatusCreated, org)
}

// ListOrganizations lists all organizations
// @Summary List organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} models.Organization
// @Failure 500 {object} ErrorResponse
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.store.ListOrganizations(c.Request.Context())
	if err != nil {
		logging.Error(c).Err(err).Msg("Failed to list organizations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orgs)
}
