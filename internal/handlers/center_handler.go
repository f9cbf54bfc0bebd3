package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/crisisdesk/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProximityService is the interface that wraps the emergency-center search engine.
type ProximityService interface {
	// Method FindNearby returns ranked emergency centers around the origin,
	// at most two per category, ordered by ascending distance.
	//
	// A provider failure for one category degrades only that category; the
	// call still returns partial results.
	FindNearby(ctx context.Context, lat, lng float64) ([]models.PlaceCandidate, error)
}

// CenterHandler handles nearby emergency center HTTP requests
type CenterHandler struct {
	BaseHandler
	proximityService ProximityService
}

// NewCenterHandler creates a new center handler
func NewCenterHandler(proximityService ProximityService, logger *zap.Logger) *CenterHandler {
	return &CenterHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		proximityService: proximityService,
	}
}

// RegisterRoutes registers all center handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *CenterHandler) RegisterRoutes(r chi.Router) {
	r.Get("/emergency-centers", h.GetNearby)
}

// GetNearby handles GET /emergency-centers
// @Summary Find nearby emergency centers
// @Description Ranked hospitals, police stations and fire stations around the given coordinate, at most two per category, ordered by distance.
// @Tags centers
// @Produce json
// @Param lat query number true "Origin latitude"
// @Param lng query number true "Origin longitude"
// @Success 200 {object} map[string][]models.PlaceCandidate "Ranked centers"
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /emergency-centers [get]
func (h *CenterHandler) GetNearby(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "lat must be a number")
		return
	}

	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "lng must be a number")
		return
	}

	centers, err := h.proximityService.FindNearby(r.Context(), lat, lng)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string][]models.PlaceCandidate{"centers": centers})
}
