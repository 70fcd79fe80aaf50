package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"realert-server/internal/logging"
	"realert-server/internal/models"
	"realert-server/internal/store"
)

type ContactHandler struct {
	store *store.Store
}

func NewContactHandler(st *store.Store) *ContactHandler {
	return &ContactHandler{store: st}
}

type CreateContactRequest struct {
	Name           string `json:"name" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	EmergencyPhone string `json:"emergency_phone" binding:"required"`
	OrganizationID string `json:"organization_id" binding:"required"`
}

// CreateContact registers a notification contact
// @Summary Register a contact
// @Description Register a contact for emergency notifications. Registration is idempotent per primary phone number: re-registering returns the existing contact.
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Contact details"
// @Success 200 {object} models.Contact "Existing contact for this phone number"
// @Success 201 {object} models.Contact
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Error(c).Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, created, err := h.store.CreateContact(c.Request.Context(), models.Contact{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		EmergencyPhone: req.EmergencyPhone,
		OrganizationID: req.OrganizationID,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}
	if err != nil {
		logging.Error(c).Err(err).Str("organization_id", req.OrganizationID).Msg("Failed to create contact")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !created {
		c.JSON(http.StatusOK, contact)
		return
	}

	logging.Info(c).Str("contact_id", contact.ID).Str("organization_id", contact.OrganizationID).Msg("Contact registered")
	c.JSON(http.StatusCreated, contact)
}

// ListContacts lists registered contacts
// @Summary List contacts
// @Description List all contacts, optionally filtered by organization
// @Tags contacts
// @Produce json
// @Param organization_id query string false "Organization ID"
// @Success 200 {array} models.Contact
// @Failure 500 {object} ErrorResponse
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	var (
		contacts []models.Contact
		err      error
	)
	if orgID := c.Query("organization_id"); orgID != "" {
		contacts, err = h.store.ContactsByOrganization(c.Request.Context(), orgID)
	} else {
		contacts, err = h.store.ListContacts(c.Request.Context())
	}
	if err != nil {
		logging.Error(c).Err(err).Msg("Failed to list contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// DeleteContacts removes all contacts
// @Summary Delete all contacts
// @Description Administrative bulk clear of the contact directory
// @Tags contacts
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /contacts [delete]
func (h *ContactHandler) DeleteContacts(c *gin.Context) {
	if err := h.store.DeleteContacts(c.Request.Context()); err != nil {
		logging.Error(c).Err(err).Msg("Failed to delete contacts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Info(c).Msg("All contacts deleted")
	c.JSON(http.StatusOK, gin.H{"message": "All contacts have been deleted"})
}
