package goalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabonilla/ascend/internal/domain"
)

type amountArg decimal.Decimal

func amount(s string) amountArg {
	return amountArg(decimal.RequireFromString(s))
}

func (a amountArg) Match(v interface{}) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(decimal.Decimal(a))
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

var columns = []string{"id", "owner_id", "name", "target_amount", "current_amount", "round_up_increment", "status", "created_at", "completed_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create goal successfully",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goals`)).
					WithArgs(id, 7, "Trip", amount("500"), amount("0"), amount("1.00"), "active").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(created))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO goals`)).
					WithArgs(id, 7, "Trip", amount("500"), amount("0"), amount("1.00"), "active").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			goal := &domain.Goal{
				ID:               id,
				OwnerID:          7,
				Name:             "Trip",
				RoundUpIncrement: decimal.RequireFromString("1.00"),
				Progress: domain.Progress{
					TargetAmount:  decimal.RequireFromString("500"),
					CurrentAmount: decimal.Zero,
					Status:        domain.GoalActive,
				},
			}

			result, err := repo.Create(context.Background(), goal)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, created, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Locks existing goal",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .* FROM goals WHERE id = \$1 FOR UPDATE`).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(
						id, 7, "Trip",
						decimal.RequireFromString("100"), decimal.RequireFromString("99.50"), decimal.RequireFromString("1"),
						"active", created, nil,
					))
			},
		},
		{
			name: "Missing goal returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .* FROM goals WHERE id = \$1 FOR UPDATE`).
					WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .* FROM goals WHERE id = \$1 FOR UPDATE`).
					WithArgs(id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			goal, err := repo.LockByID(context.Background(), id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, goal)
			} else {
				require.NotNil(t, goal)
				assert.Equal(t, id, goal.ID)
				assert.Equal(t, domain.GoalActive, goal.Status)
				assert.True(t, goal.CurrentAmount.Equal(decimal.RequireFromString("99.50")))
				assert.Nil(t, goal.CompletedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockActiveByOwner(t *testing.T) {
	repo, mock := NewMock(t)
	first, second := uuid.New(), uuid.New()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .* FROM goals WHERE owner_id = \$1 AND status = 'active' ORDER BY created_at, id FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(first, 7, "Trip", decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(1), "active", created, nil).
			AddRow(second, 7, "Bike", decimal.NewFromInt(300), decimal.NewFromInt(20), decimal.NewFromInt(2), "active", created.Add(time.Hour), nil),
		)

	goals, err := repo.LockActiveByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, first, goals[0].ID)
	assert.Equal(t, second, goals[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProgress(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	completedAt := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	goal := &domain.Goal{
		ID: id,
		Progress: domain.Progress{
			TargetAmount:  decimal.NewFromInt(100),
			CurrentAmount: decimal.RequireFromString("100.50"),
			Status:        domain.GoalCompleted,
			CompletedAt:   &completedAt,
		},
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Updates progress",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE goals`).
					WithArgs(amount("100.50"), "completed", &completedAt, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Missing row",
			mockSetup: func() {
				mock.ExpectExec(`UPDATE goals`).
					WithArgs(amount("100.50"), "completed", &completedAt, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateProgress(context.Background(), goal)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
