package services

import (
	"context"
	"strings"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
)

// ContactRepository is the interface that wraps methods for emergency_contacts table data access
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByUser(ctx context.Context, userID int64) ([]models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id, userID int64) error
}

// contactService implements emergency contact business logic
type contactService struct {
	contactRepo ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo ContactRepository) *contactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

func validateContact(req *models.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" || req.Phone == "" {
		return apperrors.Validation("name and phone are required")
	}

	return nil
}

// Create validates and stores a new emergency contact for the given user
func (s *contactService) Create(ctx context.Context, userID int64, req *models.ContactRequest) (*models.Contact, error) {
	if err := validateContact(req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		UserID:      userID,
		Name:        req.Name,
		Phone:       req.Phone,
		Type:        req.Type,
		Description: req.Description,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// GetByUser returns the user's emergency contacts, most recent first
func (s *contactService) GetByUser(ctx context.Context, userID int64) ([]models.Contact, error) {
	return s.contactRepo.GetByUser(ctx, userID)
}

// Update validates and updates a contact owned by the given user
func (s *contactService) Update(ctx context.Context, id, userID int64, req *models.ContactRequest) error {
	if err := validateContact(req); err != nil {
		return err
	}

	contact := &models.Contact{
		ID:          id,
		UserID:      userID,
		Name:        req.Name,
		Phone:       req.Phone,
		Type:        req.Type,
		Description: req.Description,
	}

	return s.contactRepo.Update(ctx, contact)
}

// Delete removes a contact owned by the given user
func (s *contactService) Delete(ctx context.Context, id, userID int64) error {
	return s.contactRepo.Delete(ctx, id, userID)
}
