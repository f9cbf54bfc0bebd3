package services

import (
	"context"
	"strings"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
)

// ReportRepository is the interface that wraps methods for reports table data access
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetAll(ctx context.Context) ([]models.Report, error)
}

// reportService implements disaster report business logic
type reportService struct {
	reportRepo ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo ReportRepository) *reportService {
	return &reportService{
		reportRepo: reportRepo,
	}
}

// Create validates and stores a new disaster report for the given user
func (s *reportService) Create(ctx context.Context, userID int64, req *models.CreateReportRequest) (*models.Report, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Location = strings.TrimSpace(req.Location)

	if req.Title == "" || req.Location == "" {
		return nil, apperrors.Validation("title and location are required")
	}

	if !req.Severity.Valid() {
		return nil, apperrors.Validation("invalid severity: must be one of low, medium, high, critical")
	}

	report := &models.Report{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Severity:    req.Severity,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// GetAll returns all disaster reports, most recent first
func (s *reportService) GetAll(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.GetAll(ctx)
}
