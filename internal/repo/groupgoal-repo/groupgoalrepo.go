package groupgoalrepo

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

const (
	groupColumns       = `id, creator_id, name, target_amount, current_amount, status, max_participants, invite_code, created_at, completed_at`
	participantColumns = `group_goal_id, user_id, role, contributed_amount, is_active, joined_at`
)

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

func scanGroup(row scanner) (domain.GroupGoal, error) {
	var (
		group       domain.GroupGoal
		status      string
		completedAt *time.Time
	)
	err := row.Scan(
		&group.ID, &group.CreatorID, &group.Name,
		&group.TargetAmount, &group.CurrentAmount, &status,
		&group.MaxParticipants, &group.InviteCode, &group.CreatedAt, &completedAt,
	)
	if err != nil {
		return domain.GroupGoal{}, err
	}
	group.Status = domain.GoalStatus(status)
	group.CompletedAt = completedAt
	return group, nil
}

func scanParticipant(row scanner) (domain.GroupParticipant, error) {
	var (
		p    domain.GroupParticipant
		role string
	)
	err := row.Scan(&p.GroupGoalID, &p.UserID, &role, &p.ContributedAmount, &p.IsActive, &p.JoinedAt)
	if err != nil {
		return domain.GroupParticipant{}, err
	}
	p.Role = domain.GroupRole(role)
	return p, nil
}

// Create inserts the group goal. A taken invite code surfaces as a unique
// violation so the caller can retry with a fresh code.
func (r *Repository) Create(ctx context.Context, group *domain.GroupGoal) error {
	query := `
		INSERT INTO group_goals (id, creator_id, name, target_amount, current_amount, status, max_participants, invite_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		group.ID, group.CreatorID, group.Name, group.TargetAmount, group.CurrentAmount,
		string(group.Status), group.MaxParticipants, group.InviteCode,
	).Scan(&group.CreatedAt)
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save group goal", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.GroupGoal, error) {
	return r.findOne(ctx, `SELECT `+groupColumns+` FROM group_goals WHERE id = $1`, id)
}

func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.GroupGoal, error) {
	return r.findOne(ctx, `SELECT `+groupColumns+` FROM group_goals WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) LockByInviteCode(ctx context.Context, code string) (*domain.GroupGoal, error) {
	return r.findOne(ctx, `SELECT `+groupColumns+` FROM group_goals WHERE invite_code = $1 FOR UPDATE`, code)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.GroupGoal, error) {
	group, err := scanGroup(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find group goal", zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *Repository) UpdateProgress(ctx context.Context, group *domain.GroupGoal) error {
	query := `
		UPDATE group_goals
		SET current_amount = $1, status = $2, completed_at = $3
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, group.CurrentAmount, string(group.Status), group.CompletedAt, group.ID)
	if err != nil {
		zap.L().Error("can't update group goal progress", zap.String("group_goal_id", group.ID.String()), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) AddParticipant(ctx context.Context, p *domain.GroupParticipant) error {
	query := `
		INSERT INTO group_participants (group_goal_id, user_id, role, contributed_amount, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING joined_at
	`
	err := r.db.QueryRow(ctx, query, p.GroupGoalID, p.UserID, string(p.Role), p.ContributedAmount, p.IsActive).Scan(&p.JoinedAt)
	if err != nil {
		zap.L().Error("can't add participant", zap.Int("user_id", p.UserID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountActiveParticipants(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM group_participants WHERE group_goal_id = $1 AND is_active`, groupID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count participants", zap.String("group_goal_id", groupID.String()), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LockParticipant returns the (group, user) row whether active or not, nil if
// the pair never existed.
func (r *Repository) LockParticipant(ctx context.Context, groupID uuid.UUID, userID int) (*domain.GroupParticipant, error) {
	query := `SELECT ` + participantColumns + ` FROM group_participants WHERE group_goal_id = $1 AND user_id = $2 FOR UPDATE`
	p, err := scanParticipant(r.db.QueryRow(ctx, query, groupID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find participant", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Participants(ctx context.Context, groupID uuid.UUID) ([]domain.GroupParticipant, error) {
	query := `SELECT ` + participantColumns + ` FROM group_participants WHERE group_goal_id = $1 ORDER BY joined_at, user_id`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		zap.L().Error("can't get participants", zap.String("group_goal_id", groupID.String()), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var participants []domain.GroupParticipant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			zap.L().Error("can't scan participant row", zap.Error(err))
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *Repository) UpdateParticipant(ctx context.Context, p *domain.GroupParticipant) error {
	query := `
		UPDATE group_participants
		SET contributed_amount = $1, is_active = $2
		WHERE group_goal_id = $3 AND user_id = $4
	`
	tag, err := r.db.Exec(ctx, query, p.ContributedAmount, p.IsActive, p.GroupGoalID, p.UserID)
	if err != nil {
		zap.L().Error("can't update participant", zap.Int("user_id", p.UserID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
