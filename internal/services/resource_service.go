package services

import (
	"context"
	"strings"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
)

// ResourceRepository is the interface that wraps methods for resources table data access
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetAll(ctx context.Context) ([]models.Resource, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Resource, error)
	UpdateStatus(ctx context.Context, id int64, status models.ResourceStatus) error
}

// resourceService implements resource request business logic
type resourceService struct {
	resourceRepo ResourceRepository
}

// NewResourceService creates a new resource service
func NewResourceService(resourceRepo ResourceRepository) *resourceService {
	return &resourceService{
		resourceRepo: resourceRepo,
	}
}

// Create validates and stores a new resource request in the requested state
func (s *resourceService) Create(ctx context.Context, userID int64, req *models.CreateResourceRequest) (*models.Resource, error) {
	req.Name = strings.TrimSpace(req.Name)

	if req.Name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if req.Quantity <= 0 {
		return nil, apperrors.Validation("quantity must be positive")
	}

	resource := &models.Resource{
		RequestedBy: userID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Category:    req.Category,
		Location:    req.Location,
		Status:      models.ResourceRequested,
	}

	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

// GetAll returns all resource requests, most recent first
func (s *resourceService) GetAll(ctx context.Context) ([]models.Resource, error) {
	return s.resourceRepo.GetAll(ctx)
}

// GetByUser returns the resource requests made by the given user, most
// recent first
func (s *resourceService) GetByUser(ctx context.Context, userID int64) ([]models.Resource, error) {
	return s.resourceRepo.GetByUser(ctx, userID)
}

// UpdateStatus moves a resource request to a new status
func (s *resourceService) UpdateStatus(ctx context.Context, id int64, status models.ResourceStatus) error {
	if !status.Valid() {
		return apperrors.Validation("invalid status: must be one of requested, approved, delivered")
	}

	return s.resourceRepo.UpdateStatus(ctx, id, status)
}
