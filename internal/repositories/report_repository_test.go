package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crisisdesk/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupReportTestRepository creates a report repository with a mock database
func setupReportTestRepository(t *testing.T) (*reportRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewReportRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestReportRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		report        *models.Report
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int64
	}{
		{
			name: "success",
			report: &models.Report{
				UserID:      5,
				Title:       "Flooding on Main Street",
				Description: "Water level rising",
				Location:    "Main Street",
				Severity:    models.SeverityHigh,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO reports`).
					WithArgs(int64(5), "Flooding on Main Street", "Water level rising", "Main Street", models.SeverityHigh).
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
			expectedError: false,
			expectedID:    3,
		},
		{
			name: "database error on insert",
			report: &models.Report{
				UserID:   5,
				Title:    "Flooding",
				Location: "Main Street",
				Severity: models.SeverityLow,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO reports`).
					WithArgs(int64(5), "Flooding", "", "Main Street", models.SeverityLow).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupReportTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.report)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.report.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReportRepository_GetAll(t *testing.T) {
	now := time.Now()

	t.Run("returns reports most recent first", func(t *testing.T) {
		repo, mock, cleanup := setupReportTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "location", "severity", "created_at"}).
			AddRow(2, 5, "Newest", "", "Shelter 4", "high", now).
			AddRow(1, 5, "Oldest", "", "Main Street", "low", now.Add(-time.Hour))
		mock.ExpectQuery(`SELECT (.+) FROM reports ORDER BY created_at DESC`).
			WillReturnRows(rows)

		reports, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "Newest", reports[0].Title)
		assert.Equal(t, "Oldest", reports[1].Title)
		assert.Equal(t, models.SeverityHigh, reports[0].Severity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo, mock, cleanup := setupReportTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT (.+) FROM reports`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "location", "severity", "created_at"}))

		reports, err := repo.GetAll(context.Background())

		require.NoError(t, err)
		assert.Empty(t, reports)
		assert.NotNil(t, reports)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupReportTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT (.+) FROM reports`).
			WillReturnError(errors.New("database error"))

		reports, err := repo.GetAll(context.Background())

		assert.Error(t, err)
		assert.Nil(t, reports)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
