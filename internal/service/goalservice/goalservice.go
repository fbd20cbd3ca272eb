package goalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/internal/calculator"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/pg"
)

//go:generate mockgen -source=goalservice.go -destination=mock_goalservice.go -package=goalservice
type GoalRepo interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	FindByOwner(ctx context.Context, ownerID int) ([]domain.Goal, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	UpdateProgress(ctx context.Context, goal *domain.Goal) error
}

type LedgerRepo interface {
	FindByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.LedgerEntry, error)
}

type Service struct {
	goalRepo         GoalRepo
	ledgerRepo       LedgerRepo
	txManager        pg.TXManager
	defaultIncrement decimal.Decimal
	now              func() time.Time
}

func New(goalRepo GoalRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, defaultIncrement decimal.Decimal) *Service {
	if !defaultIncrement.IsPositive() {
		defaultIncrement = calculator.DefaultIncrement
	}
	return &Service{
		goalRepo:         goalRepo,
		ledgerRepo:       ledgerRepo,
		txManager:        txManager,
		defaultIncrement: defaultIncrement,
		now:              time.Now,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int, name string, target, increment decimal.Decimal) (*domain.Goal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !target.IsPositive() || !target.Equal(domain.RoundMoney(target)) {
		return nil, fmt.Errorf("%w: target must be a positive amount with at most %d decimal places", domain.ErrValidation, domain.MinorUnits)
	}
	if increment.IsZero() {
		increment = s.defaultIncrement
	}
	if !increment.IsPositive() || !increment.Equal(domain.RoundMoney(increment)) {
		return nil, fmt.Errorf("%w: round-up increment must be a positive amount", domain.ErrValidation)
	}

	goal, err := s.goalRepo.Create(ctx, &domain.Goal{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             name,
		RoundUpIncrement: increment,
		Progress: domain.Progress{
			TargetAmount:  target,
			CurrentAmount: decimal.Zero,
			Status:        domain.GoalActive,
		},
	})
	if err != nil {
		zap.L().Error("failed to create goal", zap.Int("ownerID", ownerID), zap.Error(err))
		return nil, domain.Persistence(err)
	}
	zap.L().Info("Goal created", zap.String("goalID", goal.ID.String()), zap.Int("ownerID", ownerID))
	return goal, nil
}

func (s *Service) Get(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindByID(ctx, goalID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	if goal == nil || goal.OwnerID != ownerID {
		return nil, fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
	}
	return goal, nil
}

func (s *Service) List(ctx context.Context, ownerID int) ([]domain.Goal, error) {
	goals, err := s.goalRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return goals, nil
}

// Pause takes the goal out of round-up splits until it is resumed.
func (s *Service) Pause(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error) {
	return s.changeStatus(ctx, ownerID, goalID, (*domain.Progress).Pause)
}

func (s *Service) Resume(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error) {
	return s.changeStatus(ctx, ownerID, goalID, (*domain.Progress).Resume)
}

func (s *Service) changeStatus(ctx context.Context, ownerID int, goalID uuid.UUID, apply func(*domain.Progress, time.Time) error) (*domain.Goal, error) {
	var goal *domain.Goal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		goal, err = s.goalRepo.LockByID(ctx, goalID)
		if err != nil {
			return err
		}
		if goal == nil || goal.OwnerID != ownerID {
			return fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
		}
		if err := apply(&goal.Progress, s.now()); err != nil {
			return err
		}
		return s.goalRepo.UpdateProgress(ctx, goal)
	})
	if err != nil {
		err = domain.Persistence(err)
		zap.L().Info("goal status change rejected", zap.String("goalID", goalID.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Info("Goal status changed", zap.String("goalID", goalID.String()), zap.String("status", string(goal.Status)))
	return goal, nil
}

// History returns the goal's ledger entries, newest first.
func (s *Service) History(ctx context.Context, ownerID int, goalID uuid.UUID) ([]domain.LedgerEntry, error) {
	if _, err := s.Get(ctx, ownerID, goalID); err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.FindByGoal(ctx, goalID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	return entries, nil
}
