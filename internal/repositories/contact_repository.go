package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
)

// contactRepository implements data access for the emergency_contacts table
type contactRepository struct {
	db *sql.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sql.DB) *contactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create inserts a new emergency contact
func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	query := `
		INSERT INTO emergency_contacts (user_id, name, phone, type, description)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		contact.UserID, contact.Name, contact.Phone, contact.Type, contact.Description)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	contact.ID = id
	return nil
}

// GetByUser retrieves a user's emergency contacts, most recent first
func (r *contactRepository) GetByUser(ctx context.Context, userID int64) ([]models.Contact, error) {
	query := `
		SELECT id, user_id, name, phone, type, description, created_at
		FROM emergency_contacts
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.UserID,
			&contact.Name,
			&contact.Phone,
			&contact.Type,
			&contact.Description,
			&contact.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// Update updates a contact owned by the given user. Returns not-found when
// the contact does not exist or belongs to another user.
func (r *contactRepository) Update(ctx context.Context, contact *models.Contact) error {
	query := `
		UPDATE emergency_contacts
		SET name = ?, phone = ?, type = ?, description = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		contact.Name, contact.Phone, contact.Type, contact.Description, contact.ID, contact.UserID)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// Delete removes a contact owned by the given user. Returns not-found when
// the contact does not exist or belongs to another user.
func (r *contactRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM emergency_contacts WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
