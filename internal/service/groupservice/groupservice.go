package groupservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/metrics"
	"github.com/jabonilla/ascend/internal/notify"
	"github.com/jabonilla/ascend/internal/pg"
	"github.com/jabonilla/ascend/pkg/validate"
)

//go:generate mockgen -source=groupservice.go -destination=mock_groupservice.go -package=groupservice
type GroupRepo interface {
	Create(ctx context.Context, group *domain.GroupGoal) error
	LockByID(ctx context.Context, id uuid.UUID) (*domain.GroupGoal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.GroupGoal, error)
	LockByInviteCode(ctx context.Context, code string) (*domain.GroupGoal, error)
	UpdateProgress(ctx context.Context, group *domain.GroupGoal) error
	AddParticipant(ctx context.Context, p *domain.GroupParticipant) error
	CountActiveParticipants(ctx context.Context, groupID uuid.UUID) (int, error)
	LockParticipant(ctx context.Context, groupID uuid.UUID, userID int) (*domain.GroupParticipant, error)
	Participants(ctx context.Context, groupID uuid.UUID) ([]domain.GroupParticipant, error)
	UpdateParticipant(ctx context.Context, p *domain.GroupParticipant) error
}

type LedgerRepo interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	FindByGroupGoal(ctx context.Context, groupGoalID uuid.UUID) ([]domain.LedgerEntry, error)
}

type Notifier interface {
	Dispatch(ctx context.Context, events ...notify.Event)
}

const maxInviteCodeAttempts = 5

var ErrInviteCodeExhausted = errors.New("could not generate a unique invite code")

type Service struct {
	groupRepo     GroupRepo
	ledgerRepo    LedgerRepo
	txManager     pg.TXManager
	notifier      Notifier
	metrics       *metrics.Metrics
	newInviteCode func() (string, error)
	now           func() time.Time
}

func New(groupRepo GroupRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, notifier Notifier, m *metrics.Metrics) *Service {
	return &Service{
		groupRepo:     groupRepo,
		ledgerRepo:    ledgerRepo,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       m,
		newInviteCode: generateInviteCode,
		now:           time.Now,
	}
}

func generateInviteCode() (string, error) {
	var b strings.Builder
	size := big.NewInt(int64(len(validate.InviteCodeAlphabet)))
	for i := 0; i < validate.InviteCodeLength; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b.WriteByte(validate.InviteCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

func validAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !amount.Equal(domain.RoundMoney(amount)) {
		return fmt.Errorf("%w: amount has more than %d decimal places", domain.ErrValidation, domain.MinorUnits)
	}
	return nil
}

// Create stores a new group goal with the creator as its first participant.
// Each attempt runs in its own transaction since a unique violation aborts
// the one it happens in.
func (s *Service) Create(ctx context.Context, creatorID int, name string, target decimal.Decimal, maxParticipants int) (*domain.GroupGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validAmount(target); err != nil {
		return nil, err
	}
	if maxParticipants < 2 {
		return nil, fmt.Errorf("%w: a group goal needs room for at least 2 participants", domain.ErrValidation)
	}

	for attempt := 1; attempt <= maxInviteCodeAttempts; attempt++ {
		code, err := s.newInviteCode()
		if err != nil {
			zap.L().Error("failed to generate invite code", zap.Error(err))
			return nil, err
		}

		group := &domain.GroupGoal{
			ID:              uuid.New(),
			CreatorID:       creatorID,
			Name:            name,
			MaxParticipants: maxParticipants,
			InviteCode:      code,
			Progress: domain.Progress{
				TargetAmount:  target,
				CurrentAmount: decimal.Zero,
				Status:        domain.GoalActive,
			},
		}
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			if err := s.groupRepo.Create(ctx, group); err != nil {
				return err
			}
			return s.groupRepo.AddParticipant(ctx, &domain.GroupParticipant{
				GroupGoalID:       group.ID,
				UserID:            creatorID,
				Role:              domain.RoleCreator,
				ContributedAmount: decimal.Zero,
				IsActive:          true,
			})
		})
		if pg.IsUniqueViolation(err) {
			zap.L().Warn("invite code collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			zap.L().Error("failed to create group goal", zap.Int("creatorID", creatorID), zap.Error(err))
			return nil, domain.Persistence(err)
		}

		zap.L().Info("Group goal created", zap.String("groupGoalID", group.ID.String()), zap.Int("creatorID", creatorID))
		return group, nil
	}
	return nil, fmt.Errorf("%w: %w after %d attempts", domain.ErrPersistence, ErrInviteCodeExhausted, maxInviteCodeAttempts)
}

// Join adds the user to the group behind inviteCode. A former member who left
// is reactivated; capacity is checked either way.
func (s *Service) Join(ctx context.Context, userID int, inviteCode string) (*domain.GroupParticipant, error) {
	code := validate.NormalizeInviteCode(inviteCode)
	if !validate.IsInviteCode(code) {
		return nil, fmt.Errorf("%w: malformed invite code", domain.ErrValidation)
	}

	var participant *domain.GroupParticipant
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.groupRepo.LockByInviteCode(ctx, code)
		if err != nil {
			return err
		}
		if group == nil || group.Status != domain.GoalActive {
			return domain.ErrInvalidInviteCode
		}

		existing, err := s.groupRepo.LockParticipant(ctx, group.ID, userID)
		if err != nil {
			return err
		}
		if existing != nil && existing.IsActive {
			return domain.ErrAlreadyMember
		}

		count, err := s.groupRepo.CountActiveParticipants(ctx, group.ID)
		if err != nil {
			return err
		}
		if count >= group.MaxParticipants {
			return domain.ErrGroupFull
		}

		if existing != nil {
			existing.IsActive = true
			participant = existing
			return s.groupRepo.UpdateParticipant(ctx, existing)
		}
		participant = &domain.GroupParticipant{
			GroupGoalID:       group.ID,
			UserID:            userID,
			Role:              domain.RoleMember,
			ContributedAmount: decimal.Zero,
			IsActive:          true,
		}
		return s.groupRepo.AddParticipant(ctx, participant)
	})
	if err != nil {
		return nil, s.fail("join", userID, err)
	}

	zap.L().Info("Joined group goal", zap.String("groupGoalID", participant.GroupGoalID.String()), zap.Int("userID", userID))
	return participant, nil
}

// Contribute moves amount from the user into the pooled balance. The
// anonymous flag only changes how the entry is shown to other members.
func (s *Service) Contribute(ctx context.Context, userID int, groupID uuid.UUID, amount decimal.Decimal, anonymous bool) (*domain.GroupContribution, error) {
	if err := validAmount(amount); err != nil {
		return nil, err
	}

	result := &domain.GroupContribution{GroupGoalID: groupID, Amount: amount, Anonymous: anonymous}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.groupRepo.LockByID(ctx, groupID)
		if err != nil {
			return err
		}
		if group == nil {
			return fmt.Errorf("group goal %s: %w", groupID, domain.ErrNotFound)
		}
		if group.Status != domain.GoalActive {
			return domain.ErrGroupGoalNotActive
		}

		participant, err := s.groupRepo.LockParticipant(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if participant == nil || !participant.IsActive {
			return domain.ErrNotParticipant
		}

		completed, err := group.Credit(amount, s.now())
		if err != nil {
			if errors.Is(err, domain.ErrGoalNotActive) {
				return domain.ErrGroupGoalNotActive
			}
			return err
		}

		entry := &domain.LedgerEntry{
			ID:               uuid.New(),
			UserID:           userID,
			GroupGoalID:      &group.ID,
			SourceAmount:     decimal.Zero,
			AllocationAmount: amount,
			TotalAmount:      amount,
			Kind:             domain.KindGroupManual,
			Metadata:         domain.Metadata{Group: &domain.GroupMetadata{Anonymous: anonymous}},
		}
		if err := s.ledgerRepo.Create(ctx, entry); err != nil {
			return err
		}

		participant.ContributedAmount = participant.ContributedAmount.Add(amount)
		if err := s.groupRepo.UpdateParticipant(ctx, participant); err != nil {
			return err
		}
		if err := s.groupRepo.UpdateProgress(ctx, group); err != nil {
			return err
		}

		result.LedgerEntryID = entry.ID
		result.Completed = completed
		return nil
	})
	if err != nil {
		return nil, s.fail("contribute", userID, err)
	}

	s.metrics.Allocation(string(domain.KindGroupManual), amount)
	now := s.now()
	entryID := result.LedgerEntryID
	events := []notify.Event{{
		Type:          notify.ContributionRecorded,
		UserID:        userID,
		GroupGoalID:   &groupID,
		LedgerEntryID: &entryID,
		Amount:        amount,
		Anonymous:     anonymous,
		OccurredAt:    now,
	}}
	if result.Completed {
		s.metrics.Completion(metrics.ScopeGroupGoal)
		zap.L().Info("Group goal completed", zap.String("groupGoalID", groupID.String()))
		events = append(events, notify.Event{
			Type:        notify.GroupGoalCompleted,
			UserID:      userID,
			GroupGoalID: &groupID,
			Amount:      amount,
			OccurredAt:  now,
		})
	}
	s.notifier.Dispatch(ctx, events...)

	zap.L().Info("Group contribution recorded", zap.String("groupGoalID", groupID.String()), zap.Int("userID", userID), zap.String("amount", amount.String()))
	return result, nil
}

// Leave deactivates a member. The creator can never leave; contributions
// made so far stay in the pool and in the ledger.
func (s *Service) Leave(ctx context.Context, userID int, groupID uuid.UUID) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		group, err := s.groupRepo.LockByID(ctx, groupID)
		if err != nil {
			return err
		}
		if group == nil {
			return fmt.Errorf("group goal %s: %w", groupID, domain.ErrNotFound)
		}

		participant, err := s.groupRepo.LockParticipant(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if participant == nil {
			return domain.ErrNotParticipant
		}
		if participant.Role == domain.RoleCreator {
			return domain.ErrCreatorCannotLeave
		}
		if !participant.IsActive {
			return domain.ErrNotParticipant
		}

		participant.IsActive = false
		return s.groupRepo.UpdateParticipant(ctx, participant)
	})
	if err != nil {
		return s.fail("leave", userID, err)
	}

	zap.L().Info("Left group goal", zap.String("groupGoalID", groupID.String()), zap.Int("userID", userID))
	return nil
}

// Get returns the group goal and its roster. Only people who have been
// participants may look at it.
func (s *Service) Get(ctx context.Context, groupID uuid.UUID, viewerID int) (*domain.GroupGoal, []domain.GroupParticipant, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, nil, domain.Persistence(err)
	}
	if group == nil {
		return nil, nil, fmt.Errorf("group goal %s: %w", groupID, domain.ErrNotFound)
	}

	participants, err := s.roster(ctx, groupID, viewerID)
	if err != nil {
		return nil, nil, err
	}
	return group, participants, nil
}

// Contributions lists the group ledger, newest first. Anonymous entries keep
// their contributor only for that contributor.
func (s *Service) Contributions(ctx context.Context, groupID uuid.UUID, viewerID int) ([]domain.LedgerEntry, error) {
	if _, err := s.roster(ctx, groupID, viewerID); err != nil {
		return nil, err
	}

	entries, err := s.ledgerRepo.FindByGroupGoal(ctx, groupID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	for i := range entries {
		if entries[i].Metadata.Anonymous() && entries[i].UserID != viewerID {
			entries[i].UserID = 0
		}
	}
	return entries, nil
}

func (s *Service) roster(ctx context.Context, groupID uuid.UUID, viewerID int) ([]domain.GroupParticipant, error) {
	participants, err := s.groupRepo.Participants(ctx, groupID)
	if err != nil {
		return nil, domain.Persistence(err)
	}
	for _, p := range participants {
		if p.UserID == viewerID {
			return participants, nil
		}
	}
	return nil, fmt.Errorf("group goal %s: %w", groupID, domain.ErrNotFound)
}

func (s *Service) fail(op string, userID int, err error) error {
	err = domain.Persistence(err)
	if errors.Is(err, domain.ErrPersistence) {
		zap.L().Error("group operation failed", zap.String("op", op), zap.Int("userID", userID), zap.Error(err))
	} else {
		zap.L().Info("group operation rejected", zap.String("op", op), zap.Int("userID", userID), zap.Error(err))
	}
	return err
}
