package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crisisdesk/backend/internal/apperrors"
	"github.com/crisisdesk/backend/internal/models"
)

// resourceRepository implements data access for the resources table
type resourceRepository struct {
	db *sql.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *sql.DB) *resourceRepository {
	return &resourceRepository{
		db: db,
	}
}

// Create inserts a new resource request in the requested state
func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (requested_by, name, quantity, category, location, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		resource.RequestedBy, resource.Name, resource.Quantity,
		resource.Category, resource.Location, resource.Status)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	resource.ID = id
	return nil
}

// GetAll retrieves all resource requests, most recent first
func (r *resourceRepository) GetAll(ctx context.Context) ([]models.Resource, error) {
	query := `
		SELECT id, requested_by, name, quantity, category, location, status, created_at, updated_at
		FROM resources
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var resource models.Resource
		if err := rows.Scan(
			&resource.ID,
			&resource.RequestedBy,
			&resource.Name,
			&resource.Quantity,
			&resource.Category,
			&resource.Location,
			&resource.Status,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}

	return resources, nil
}

// GetByUser retrieves the resource requests made by the given user, most
// recent first
func (r *resourceRepository) GetByUser(ctx context.Context, userID int64) ([]models.Resource, error) {
	query := `
		SELECT id, requested_by, name, quantity, category, location, status, created_at, updated_at
		FROM resources
		WHERE requested_by = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var resource models.Resource
		if err := rows.Scan(
			&resource.ID,
			&resource.RequestedBy,
			&resource.Name,
			&resource.Quantity,
			&resource.Category,
			&resource.Location,
			&resource.Status,
			&resource.CreatedAt,
			&resource.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, resource)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}

	return resources, nil
}

// UpdateStatus updates a resource's status. Returns not-found when no
// resource has the given id.
func (r *resourceRepository) UpdateStatus(ctx context.Context, id int64, status models.ResourceStatus) error {
	query := `UPDATE resources SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update resource status: %w", err)
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
