package allocationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jabonilla/ascend/internal/calculator"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/feed"
	"github.com/jabonilla/ascend/internal/metrics"
	"github.com/jabonilla/ascend/internal/notify"
	"github.com/jabonilla/ascend/internal/pg"
)

//go:generate mockgen -source=allocationservice.go -destination=mock_allocationservice.go -package=allocationservice
type GoalRepo interface {
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Goal, error)
	LockActiveByOwner(ctx context.Context, ownerID int) ([]domain.Goal, error)
	UpdateProgress(ctx context.Context, goal *domain.Goal) error
}

type LedgerRepo interface {
	ClaimSourceTransaction(ctx context.Context, userID int, sourceTransactionID string) (bool, error)
	Create(ctx context.Context, entry *domain.LedgerEntry) error
}

type Notifier interface {
	Dispatch(ctx context.Context, events ...notify.Event)
}

type TransactionFeed interface {
	GetTransaction(ctx context.Context, sourceTransactionID string) (*feed.Transaction, error)
}

const defaultBatchConcurrency = 4

// RoundUpEvent is one settled purchase offered for allocation.
type RoundUpEvent struct {
	SourceTransactionID string
	PurchaseAmount      decimal.Decimal
	Merchant            string
	Category            string
	Currency            string
}

type Service struct {
	goalRepo         GoalRepo
	ledgerRepo       LedgerRepo
	txManager        pg.TXManager
	notifier         Notifier
	feed             TransactionFeed
	metrics          *metrics.Metrics
	batchConcurrency int
	now              func() time.Time
}

func New(
	goalRepo GoalRepo,
	ledgerRepo LedgerRepo,
	txManager pg.TXManager,
	notifier Notifier,
	feed TransactionFeed,
	m *metrics.Metrics,
	batchConcurrency int,
) *Service {
	if batchConcurrency <= 0 {
		batchConcurrency = defaultBatchConcurrency
	}
	return &Service{
		goalRepo:         goalRepo,
		ledgerRepo:       ledgerRepo,
		txManager:        txManager,
		notifier:         notifier,
		feed:             feed,
		metrics:          m,
		batchConcurrency: batchConcurrency,
		now:              time.Now,
	}
}

// AllocateRoundUp splits the round-up of one purchase evenly across the
// user's active goals. Refunds and users without active goals get an empty
// result; a repeated source transaction fails with ErrDuplicateAllocation.
func (s *Service) AllocateRoundUp(ctx context.Context, userID int, sourceTransactionID string, purchaseAmount decimal.Decimal) (*domain.AllocationResult, error) {
	return s.allocateRoundUp(ctx, userID, RoundUpEvent{
		SourceTransactionID: sourceTransactionID,
		PurchaseAmount:      purchaseAmount,
	})
}

func (s *Service) allocateRoundUp(ctx context.Context, userID int, event RoundUpEvent) (*domain.AllocationResult, error) {
	if event.SourceTransactionID == "" {
		return nil, fmt.Errorf("%w: source transaction id is required", domain.ErrValidation)
	}

	result := &domain.AllocationResult{
		Kind:                domain.KindRoundUp,
		SourceTransactionID: event.SourceTransactionID,
		Total:               decimal.Zero,
	}
	if !event.PurchaseAmount.IsPositive() {
		zap.L().Info("Skipping non-positive purchase",
			zap.Int("userID", userID), zap.String("sourceTransactionId", event.SourceTransactionID), zap.String("amount", event.PurchaseAmount.String()))
		return result, nil
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		goals, err := s.goalRepo.LockActiveByOwner(ctx, userID)
		if err != nil {
			return err
		}
		if len(goals) == 0 {
			return nil
		}

		claimed, err := s.ledgerRepo.ClaimSourceTransaction(ctx, userID, event.SourceTransactionID)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ErrDuplicateAllocation
		}

		increment := goals[0].RoundUpIncrement
		if !increment.IsPositive() {
			increment = calculator.DefaultIncrement
		}
		total := calculator.RoundUp(event.PurchaseAmount, increment)
		shares, err := calculator.SplitEven(total, len(goals), domain.MinorUnits)
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}

		metadata := domain.Metadata{RoundUp: &domain.RoundUpMetadata{
			SourceTransactionID: event.SourceTransactionID,
			Increment:           increment.StringFixed(domain.MinorUnits),
			Merchant:            event.Merchant,
			Category:            event.Category,
			Currency:            event.Currency,
		}}

		for i := range goals {
			if !shares[i].IsPositive() {
				continue
			}
			entry := &domain.LedgerEntry{
				SourceTransactionID: event.SourceTransactionID,
				SourceAmount:        event.PurchaseAmount,
				AllocationAmount:    shares[i],
				TotalAmount:         event.PurchaseAmount.Add(shares[i]),
				Kind:                domain.KindRoundUp,
				Metadata:            metadata,
			}
			credit, err := s.credit(ctx, userID, &goals[i], entry)
			if err != nil {
				return err
			}
			result.Credits = append(result.Credits, credit)
			result.Total = result.Total.Add(credit.Amount)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(err, userID, domain.KindRoundUp)
	}

	s.committed(ctx, userID, result)
	return result, nil
}

// AllocateManual credits amount to one of the user's own goals.
func (s *Service) AllocateManual(ctx context.Context, userID int, goalID uuid.UUID, amount decimal.Decimal, note string) (*domain.AllocationResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !amount.Equal(domain.RoundMoney(amount)) {
		return nil, fmt.Errorf("%w: amount has more than %d decimal places", domain.ErrValidation, domain.MinorUnits)
	}

	result := &domain.AllocationResult{Kind: domain.KindManual, Total: decimal.Zero}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		goal, err := s.goalRepo.LockByID(ctx, goalID)
		if err != nil {
			return err
		}
		if goal == nil || goal.OwnerID != userID {
			return fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
		}

		entry := &domain.LedgerEntry{
			SourceAmount:     decimal.Zero,
			AllocationAmount: amount,
			TotalAmount:      amount,
			Kind:             domain.KindManual,
			Metadata:         domain.Metadata{Manual: &domain.ManualMetadata{Note: note}},
		}
		credit, err := s.credit(ctx, userID, goal, entry)
		if err != nil {
			return err
		}
		result.Credits = append(result.Credits, credit)
		result.Total = credit.Amount
		return nil
	})
	if err != nil {
		return nil, s.fail(err, userID, domain.KindManual)
	}

	s.committed(ctx, userID, result)
	return result, nil
}

// AllocateBatch looks every id up in the transaction feed and allocates it
// as a round-up. Items are independent: each runs in its own transaction and
// its failure is reported on the item only.
func (s *Service) AllocateBatch(ctx context.Context, userID int, sourceTransactionIDs []string) (*domain.BatchResult, error) {
	if len(sourceTransactionIDs) == 0 {
		return nil, fmt.Errorf("%w: no source transactions given", domain.ErrValidation)
	}

	items := make([]domain.BatchItem, len(sourceTransactionIDs))
	var g errgroup.Group
	g.SetLimit(s.batchConcurrency)
	for i, id := range sourceTransactionIDs {
		i, id := i, id
		g.Go(func() error {
			items[i] = s.batchItem(ctx, userID, id)
			s.metrics.BatchItem(string(items[i].Outcome))
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.BatchResult{Items: items}
	zap.L().Info("Batch allocation finished",
		zap.Int("userID", userID),
		zap.Int("succeeded", result.Count(domain.OutcomeSucceeded)),
		zap.Int("duplicate", result.Count(domain.OutcomeDuplicate)),
		zap.Int("skipped", result.Count(domain.OutcomeSkipped)),
		zap.Int("failed", result.Count(domain.OutcomeFailed)))
	return result, nil
}

func (s *Service) batchItem(ctx context.Context, userID int, sourceTransactionID string) domain.BatchItem {
	item := domain.BatchItem{SourceTransactionID: sourceTransactionID}

	tx, err := s.feed.GetTransaction(ctx, sourceTransactionID)
	if err != nil {
		item.Outcome = domain.OutcomeFailed
		item.Err = err
		return item
	}
	if tx.Pending {
		item.Outcome = domain.OutcomeSkipped
		return item
	}

	result, err := s.allocateRoundUp(ctx, userID, RoundUpEvent{
		SourceTransactionID: tx.SourceTransactionID,
		PurchaseAmount:      tx.Amount,
		Merchant:            tx.Merchant,
		Category:            tx.Category,
		Currency:            tx.Currency,
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateAllocation):
		item.Outcome = domain.OutcomeDuplicate
		item.Err = err
	case err != nil:
		item.Outcome = domain.OutcomeFailed
		item.Err = err
	default:
		item.Outcome = domain.OutcomeSucceeded
		item.Result = result
	}
	return item
}

// credit applies one ledger entry to a locked goal: balance, completion
// check, ledger row and goal row, all on the caller's transaction.
func (s *Service) credit(ctx context.Context, userID int, goal *domain.Goal, entry *domain.LedgerEntry) (domain.Credit, error) {
	completed, err := goal.Credit(entry.AllocationAmount, s.now())
	if err != nil {
		return domain.Credit{}, fmt.Errorf("goal %s: %w", goal.ID, err)
	}
	if err := entry.Metadata.Validate(entry.Kind); err != nil {
		return domain.Credit{}, err
	}

	goalID := goal.ID
	entry.ID = uuid.New()
	entry.UserID = userID
	entry.GoalID = &goalID
	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return domain.Credit{}, err
	}
	if err := s.goalRepo.UpdateProgress(ctx, goal); err != nil {
		return domain.Credit{}, err
	}

	return domain.Credit{
		GoalID:        goalID,
		LedgerEntryID: entry.ID,
		Amount:        entry.AllocationAmount,
		Completed:     completed,
	}, nil
}

func (s *Service) fail(err error, userID int, kind domain.LedgerKind) error {
	err = domain.Persistence(err)
	switch {
	case errors.Is(err, domain.ErrDuplicateAllocation):
		s.metrics.Duplicate()
		zap.L().Info("Duplicate allocation ignored", zap.Int("userID", userID), zap.Error(err))
	case errors.Is(err, domain.ErrPersistence):
		zap.L().Error("Allocation failed", zap.Int("userID", userID), zap.String("kind", string(kind)), zap.Error(err))
	default:
		zap.L().Info("Allocation rejected", zap.Int("userID", userID), zap.String("kind", string(kind)), zap.Error(err))
	}
	return err
}

// committed runs after the transaction is durable. Nothing here can undo it.
func (s *Service) committed(ctx context.Context, userID int, result *domain.AllocationResult) {
	if result.NoOp() {
		zap.L().Info("Nothing to allocate", zap.Int("userID", userID), zap.String("kind", string(result.Kind)))
		return
	}

	now := s.now()
	events := make([]notify.Event, 0, len(result.Credits))
	for _, c := range result.Credits {
		goalID, entryID := c.GoalID, c.LedgerEntryID
		s.metrics.Allocation(string(result.Kind), c.Amount)
		events = append(events, notify.Event{
			Type:          notify.ContributionRecorded,
			UserID:        userID,
			GoalID:        &goalID,
			LedgerEntryID: &entryID,
			Amount:        c.Amount,
			OccurredAt:    now,
		})
		if c.Completed {
			s.metrics.Completion(metrics.ScopeGoal)
			zap.L().Info("Goal completed", zap.Int("userID", userID), zap.String("goalID", goalID.String()))
			events = append(events, notify.Event{
				Type:       notify.GoalCompleted,
				UserID:     userID,
				GoalID:     &goalID,
				Amount:     c.Amount,
				OccurredAt: now,
			})
		}
	}

	zap.L().Info("Allocation committed",
		zap.Int("userID", userID),
		zap.String("kind", string(result.Kind)),
		zap.String("total", result.Total.String()),
		zap.Int("goals", len(result.Credits)))
	s.notifier.Dispatch(ctx, events...)
}
