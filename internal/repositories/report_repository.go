package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crisisdesk/backend/internal/models"
)

// reportRepository implements data access for the reports table
type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *reportRepository {
	return &reportRepository{
		db: db,
	}
}

// Create inserts a new disaster report
func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (user_id, title, description, location, severity)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		report.UserID, report.Title, report.Description, report.Location, report.Severity)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	report.ID = id
	return nil
}

// GetAll retrieves all reports, most recent first
func (r *reportRepository) GetAll(ctx context.Context) ([]models.Report, error) {
	query := `
		SELECT id, user_id, title, description, location, severity, created_at
		FROM reports
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.Title,
			&report.Description,
			&report.Location,
			&report.Severity,
			&report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return reports, nil
}
