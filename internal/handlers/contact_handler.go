package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/crisisdesk/backend/internal/auth"
	"github.com/crisisdesk/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContactService is the interface that wraps methods for emergency contact business logic.
type ContactService interface {
	Create(ctx context.Context, userID int64, req *models.ContactRequest) (*models.Contact, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Contact, error)
	Update(ctx context.Context, id, userID int64, req *models.ContactRequest) error
	Delete(ctx context.Context, id, userID int64) error
}

// ContactHandler handles emergency contact HTTP requests
type ContactHandler struct {
	BaseHandler
	contactService ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		contactService: contactService,
	}
}

// RegisterRoutes registers all contact handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Put("/{contactID}", h.Update)
		r.Delete("/{contactID}", h.Delete)
	})
}

// Create handles POST /contacts
// @Summary Add an emergency contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact"
// @Success 201 {object} models.Contact
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contact, err := h.contactService.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, contact)
}

// GetAll handles GET /contacts
// @Summary List the caller's emergency contacts
// @Tags contacts
// @Produce json
// @Success 200 {array} models.Contact
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	contacts, err := h.contactService.GetByUser(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, contacts)
}

// Update handles PUT /contacts/{contactID}
// @Summary Update an emergency contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contactID path int true "Contact ID"
// @Param request body models.ContactRequest true "Contact"
// @Success 200 {object} map[string]string "Contact updated"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /contacts/{contactID} [put]
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contactService.Update(r.Context(), id, claims.UserID, &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "contact updated"})
}

// Delete handles DELETE /contacts/{contactID}
// @Summary Delete an emergency contact
// @Tags contacts
// @Produce json
// @Param contactID path int true "Contact ID"
// @Success 200 {object} map[string]string "Contact deleted"
// @Failure 404 {object} map[string]string "Contact not found"
// @Security BearerAuth
// @Router /contacts/{contactID} [delete]
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "contactID"), 10, 64)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	if err := h.contactService.Delete(r.Context(), id, claims.UserID); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "contact deleted"})
}
