package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vr1e/flashcard-study-sub000/internal/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// setupProgressRepository creates a repository with a mock database
func setupProgressRepository(t *testing.T) (*progressRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewProgressRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestProgressRepository_GetOrCreate(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		expectedID    int
	}{
		{
			name: "creates and reads back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO card_progress`).
					WithArgs(1, 7, "a_to_b", models.DefaultEaseFactor, models.DefaultIntervalDays, 0, testNow).
					WillReturnResult(sqlmock.NewResult(3, 1))
				rows := sqlmock.NewRows([]string{"id", "user_id", "card_id", "direction", "ease_factor", "interval_days", "repetitions", "next_review_at"}).
					AddRow(3, 1, 7, "a_to_b", 2.5, 1, 0, testNow)
				mock.ExpectQuery(`SELECT id, user_id, card_id, direction, ease_factor, interval_days, repetitions, next_review_at`).
					WithArgs(1, 7, "a_to_b").
					WillReturnRows(rows)
			},
			expectedID: 3,
		},
		{
			name: "existing record returned unchanged",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO card_progress`).
					WithArgs(1, 7, "a_to_b", models.DefaultEaseFactor, models.DefaultIntervalDays, 0, testNow).
					WillReturnResult(sqlmock.NewResult(0, 0))
				rows := sqlmock.NewRows([]string{"id", "user_id", "card_id", "direction", "ease_factor", "interval_days", "repetitions", "next_review_at"}).
					AddRow(9, 1, 7, "a_to_b", 2.7, 15, 3, testNow.AddDate(0, 0, 15))
				mock.ExpectQuery(`SELECT id, user_id, card_id, direction`).
					WithArgs(1, 7, "a_to_b").
					WillReturnRows(rows)
			},
			expectedID: 9,
		},
		{
			name: "upsert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO card_progress`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: errors.New("failed to upsert progress record"),
		},
		{
			name: "record vanished after upsert is a conflict",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO card_progress`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT id, user_id, card_id, direction`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedError: models.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			record, err := repo.GetOrCreate(context.Background(), 1, 7, models.DirectionAToB, testNow)

			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, models.ErrConflict) {
					assert.ErrorIs(t, err, models.ErrConflict)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, record.ID)
				assert.Equal(t, 1, record.UserID)
				assert.Equal(t, 7, record.CardID)
				assert.Equal(t, models.DirectionAToB, record.Direction)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_SaveWithReview(t *testing.T) {
	progress := models.CardProgress{
		ID:           5,
		UserID:       1,
		CardID:       7,
		Direction:    models.DirectionAToB,
		EaseFactor:   2.6,
		IntervalDays: 6,
		Repetitions:  2,
		NextReviewAt: testNow.AddDate(0, 0, 6),
	}
	review := models.Review{
		ProgressID:       5,
		SessionID:        11,
		Quality:          5,
		Direction:        models.DirectionAToB,
		TimeTakenSeconds: 4,
		ReviewedAt:       testNow,
	}

	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		conflict      bool
	}{
		{
			name: "progress update and review insert share one transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE card_progress`).
					WithArgs(2.6, 6, 2, testNow.AddDate(0, 0, 6), 5).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO reviews`).
					WithArgs(5, 11, 5, "a_to_b", 4, testNow).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "update error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE card_progress`).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "missing progress row is a conflict",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE card_progress`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: true,
			conflict:      true,
		},
		{
			name: "review insert error rolls back the progress update",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE card_progress`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO reviews`).
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			expectedError: true,
		},
		{
			name: "commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE card_progress`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO reviews`).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.SaveWithReview(context.Background(), progress, review)

			if tt.expectedError {
				require.Error(t, err)
				if tt.conflict {
					assert.ErrorIs(t, err, models.ErrConflict)
				}
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_FindDue(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
		check         func(*testing.T, []models.CardProgress)
	}{
		{
			name: "mixes existing records with never-reviewed cards",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "p.id", "ease_factor", "interval_days", "repetitions", "next_review_at"}).
					AddRow(7, 5, 2.6, 6, 2, testNow.AddDate(0, 0, -1)).
					AddRow(8, nil, nil, nil, nil, nil)
				mock.ExpectQuery(`SELECT c.id, p.id, p.ease_factor, p.interval_days, p.repetitions, p.next_review_at`).
					WithArgs(1, "a_to_b", 3, testNow, testNow, 20).
					WillReturnRows(rows)
			},
			expectedCount: 2,
			check: func(t *testing.T, records []models.CardProgress) {
				assert.Equal(t, 5, records[0].ID)
				assert.Equal(t, 7, records[0].CardID)
				// The never-reviewed card surfaces as a fresh default
				// record, due now, with no persisted row yet.
				assert.Equal(t, 0, records[1].ID)
				assert.Equal(t, 8, records[1].CardID)
				assert.Equal(t, models.DefaultEaseFactor, records[1].EaseFactor)
				assert.Equal(t, testNow, records[1].NextReviewAt)
				assert.True(t, records[1].IsDue(testNow))
			},
		},
		{
			name: "empty deck yields empty result",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "p.id", "ease_factor", "interval_days", "repetitions", "next_review_at"})
				mock.ExpectQuery(`SELECT c.id, p.id`).
					WithArgs(1, "a_to_b", 3, testNow, testNow, 20).
					WillReturnRows(rows)
			},
			expectedCount: 0,
		},
		{
			name: "query error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT c.id, p.id`).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupProgressRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			records, err := repo.FindDue(context.Background(), 1, 3, models.DirectionAToB, testNow, 20)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, records)
			} else {
				require.NoError(t, err)
				assert.Len(t, records, tt.expectedCount)
				if tt.check != nil {
					tt.check(t, records)
				}
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProgressRepository_CountDueCards(t *testing.T) {
	repo, mock, cleanup := setupProgressRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(4)
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(3, 1, testNow).
		WillReturnRows(rows)

	count, err := repo.CountDueCards(context.Background(), 1, 3, testNow)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepository_GetByUserAndDeck(t *testing.T) {
	repo, mock, cleanup := setupProgressRepository(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "user_id", "card_id", "direction", "ease_factor", "interval_days", "repetitions", "next_review_at"}).
		AddRow(1, 1, 7, "a_to_b", 2.5, 1, 0, testNow).
		AddRow(2, 1, 7, "b_to_a", 2.36, 1, 1, testNow.AddDate(0, 0, 1))
	mock.ExpectQuery(`SELECT p.id, p.user_id, p.card_id, p.direction`).
		WithArgs(1, 3).
		WillReturnRows(rows)

	records, err := repo.GetByUserAndDeck(context.Background(), 1, 3)

	require.NoError(t, err)
	require.Len(t, records, 2)
	// The two directions of the same card are separate records.
	assert.Equal(t, models.DirectionAToB, records[0].Direction)
	assert.Equal(t, models.DirectionBToA, records[1].Direction)
	assert.NotEqual(t, records[0].EaseFactor, records[1].EaseFactor)
	assert.NoError(t, mock.ExpectationsWereMet())
}
