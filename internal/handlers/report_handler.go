package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/crisisdesk/backend/internal/auth"
	"github.com/crisisdesk/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ReportService is the interface that wraps methods for disaster report business logic.
type ReportService interface {
	Create(ctx context.Context, userID int64, req *models.CreateReportRequest) (*models.Report, error)
	GetAll(ctx context.Context) ([]models.Report, error)
}

// ReportHandler handles disaster report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		reportService: reportService,
	}
}

// RegisterRoutes registers all report handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ReportHandler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.GetAll)
	})
}

// Create handles POST /reports
// @Summary Report a disaster
// @Description Submit a new disaster report for the authenticated user.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body models.CreateReportRequest true "Report"
// @Success 201 {object} models.Report
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.reportService.Create(r.Context(), claims.UserID, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, report)
}

// GetAll handles GET /reports
// @Summary List disaster reports
// @Description All disaster reports, most recent first.
// @Tags reports
// @Produce json
// @Success 200 {array} models.Report
// @Failure 401 {object} map[string]string "Authentication required"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.GetAll(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, reports)
}
