package goalrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/pg"
)

const goalColumns = `id, owner_id, name, target_amount, current_amount, round_up_increment, status, created_at, completed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (domain.Goal, error) {
	var (
		goal        domain.Goal
		status      string
		completedAt *time.Time
	)
	err := row.Scan(
		&goal.ID, &goal.OwnerID, &goal.Name,
		&goal.TargetAmount, &goal.CurrentAmount, &goal.RoundUpIncrement,
		&status, &goal.CreatedAt, &completedAt,
	)
	if err != nil {
		return domain.Goal{}, err
	}
	goal.Status = domain.GoalStatus(status)
	goal.CompletedAt = completedAt
	return goal, nil
}

func (r *Repository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	query := `
		INSERT INTO goals (id, owner_id, name, target_amount, current_amount, round_up_increment, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		goal.ID, goal.OwnerID, goal.Name, goal.TargetAmount, goal.CurrentAmount, goal.RoundUpIncrement, string(goal.Status),
	).Scan(&goal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save goal", zap.Error(err))
		return nil, err
	}
	return goal, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// LockByID loads the goal and holds its row lock until the surrounding
// transaction ends.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, id uuid.UUID) (*domain.Goal, error) {
	goal, err := scanGoal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find goal", zap.String("goal_id", id.String()), zap.Error(err))
		return nil, err
	}
	return &goal, nil
}

func (r *Repository) FindByOwner(ctx context.Context, ownerID int) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE owner_id = $1 ORDER BY created_at, id`
	return r.findMany(ctx, query, ownerID)
}

// LockActiveByOwner returns the owner's active goals, oldest first, locking
// every returned row. The result is the snapshot an allocation splits over.
func (r *Repository) LockActiveByOwner(ctx context.Context, ownerID int) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE owner_id = $1 AND status = 'active' ORDER BY created_at, id FOR UPDATE`
	return r.findMany(ctx, query, ownerID)
}

func (r *Repository) findMany(ctx context.Context, query string, ownerID int) ([]domain.Goal, error) {
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		zap.L().Error("can't get goals", zap.Int("owner_id", ownerID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			zap.L().Error("can't scan goal row", zap.Error(err))
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate goal rows", zap.Error(err))
		return nil, err
	}
	return goals, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, goal *domain.Goal) error {
	query := `
		UPDATE goals
		SET current_amount = $1, status = $2, completed_at = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, goal.CurrentAmount, string(goal.Status), goal.CompletedAt, goal.ID)
	if err != nil {
		zap.L().Error("can't update goal progress", zap.String("goal_id", goal.ID.String()), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
