package allocationservice

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/notify"
	"github.com/jabonilla/ascend/internal/pg"
)

// memStore is an in-memory goal and ledger store. Its Begin serializes
// transactions and restores the previous state when fn fails, which is what
// row locks plus rollback give the service on PostgreSQL.
type memStore struct {
	mu     sync.Mutex
	goals  map[uuid.UUID]domain.Goal
	ledger []domain.LedgerEntry
	claims map[string]bool

	failLedgerAfter int
	ledgerWrites    int
}

var _ pg.TXManager = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		goals:           map[uuid.UUID]domain.Goal{},
		claims:          map[string]bool{},
		failLedgerAfter: -1,
	}
}

var errLedgerWrite = errors.New("ledger write failed")

func (m *memStore) addGoal(ownerID int, target, current string, status domain.GoalStatus, age time.Duration) domain.Goal {
	g := domain.Goal{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             "goal",
		RoundUpIncrement: decimal.RequireFromString("1.00"),
		CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(age),
		Progress: domain.Progress{
			TargetAmount:  decimal.RequireFromString(target),
			CurrentAmount: decimal.RequireFromString(current),
			Status:        status,
		},
	}
	m.goals[g.ID] = g
	return g
}

func (m *memStore) goal(id uuid.UUID) domain.Goal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.goals[id]
}

func (m *memStore) entries() []domain.LedgerEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.LedgerEntry(nil), m.ledger...)
}

func (m *memStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	goals := make(map[uuid.UUID]domain.Goal, len(m.goals))
	for k, v := range m.goals {
		goals[k] = v
	}
	claims := make(map[string]bool, len(m.claims))
	for k, v := range m.claims {
		claims[k] = v
	}
	ledger := append([]domain.LedgerEntry(nil), m.ledger...)

	if err := fn(ctx); err != nil {
		m.goals, m.claims, m.ledger = goals, claims, ledger
		return err
	}
	return nil
}

func (m *memStore) LockByID(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
	g, ok := m.goals[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (m *memStore) LockActiveByOwner(_ context.Context, ownerID int) ([]domain.Goal, error) {
	var goals []domain.Goal
	for _, g := range m.goals {
		if g.OwnerID == ownerID && g.Status == domain.GoalActive {
			goals = append(goals, g)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].CreatedAt.Before(goals[j].CreatedAt) })
	return goals, nil
}

func (m *memStore) UpdateProgress(_ context.Context, goal *domain.Goal) error {
	if _, ok := m.goals[goal.ID]; !ok {
		return domain.ErrNotFound
	}
	m.goals[goal.ID] = *goal
	return nil
}

func (m *memStore) ClaimSourceTransaction(_ context.Context, userID int, sourceTransactionID string) (bool, error) {
	key := strconv.Itoa(userID) + "/" + sourceTransactionID
	if m.claims[key] {
		return false, nil
	}
	m.claims[key] = true
	return true, nil
}

func (m *memStore) Create(_ context.Context, entry *domain.LedgerEntry) error {
	if m.failLedgerAfter >= 0 && m.ledgerWrites >= m.failLedgerAfter {
		return errLedgerWrite
	}
	m.ledgerWrites++
	entry.CreatedAt = time.Now()
	m.ledger = append(m.ledger, *entry)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(_ context.Context, events ...notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
}

func (n *recordingNotifier) count(t notify.EventType) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.events {
		if e.Type == t {
			c++
		}
	}
	return c
}
