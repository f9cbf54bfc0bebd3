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

// ResourceService is the interface that wraps methods for resource request business logic.
type ResourceService interface {
	Create(ctx context.Context, userID int64, req *models.CreateResourceRequest) (*models.Resource, error)
	GetAll(ctx context.Context) ([]models.Resource, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Resource, error)
	UpdateStatus(ctx context.Context, id int64, status models.ResourceStatus) error
}

// ResourceHandler handles resource request HTTP requests
type ResourceHandler struct {
	BaseHandler
	resourceService ResourceService
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(resourceService ResourceService, logger *zap.Logger) *ResourceHandler {
	return &ResourceHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		resourceService: resourceService,
	}
}

// RegisterRoutes registers the resource routes available to every
// authenticated user
// Note: This assumes the router is already scoped to /api/v1
func (h *ResourceHandler) RegisterRoutes(r chi.Router) {
	r.Route("/resources", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
		r.Get("/mine", h.GetMine)
	})
}

// RegisterResponderRoutes registers the routes restricted to admins and
// emergency responders
func (h *ResourceHandler) RegisterResponderRoutes(r chi.Router) {
	r.Patch("/resources/{resourceID}/status", h.UpdateStatus)
}

// Create handles POST /resources
// @Summary Request a resource
// @Tags resources
// @Accept json
// @Produce json
// @Param request body models.CreateResourceRequest true "Resource request"
// @Success 201 {object} models.Resource
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /resources [post]
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resource, err := h.resourceService.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, resource)
}

// GetAll handles GET /resources
// @Summary List resource requests
// @Tags resources
// @Produce json
// @Success 200 {array} models.Resource
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /resources [get]
func (h *ResourceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	resources, err := h.resourceService.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resources)
}

// GetMine handles GET /resources/mine
// @Summary List the caller's resource requests
// @Tags resources
// @Produce json
// @Success 200 {array} models.Resource
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /resources/mine [get]
func (h *ResourceHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	resources, err := h.resourceService.GetByUser(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resources)
}

// updateStatusRequest carries the target status for a resource request
type updateStatusRequest struct {
	Status models.ResourceStatus `json:"status"`
}

// UpdateStatus handles PATCH /resources/{resourceID}/status
// @Summary Update a resource request's status
// @Description Restricted to admins and emergency responders.
// @Tags resources
// @Accept json
// @Produce json
// @Param resourceID path int true "Resource ID"
// @Param request body updateStatusRequest true "New status"
// @Success 200 {object} map[string]string "Status updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 404 {object} map[string]string "Resource not found"
// @Security BearerAuth
// @Router /resources/{resourceID}/status [patch]
func (h *ResourceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "resourceID"), 10, 64)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.resourceService.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}
