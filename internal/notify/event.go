package notify

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Exchange is the topic exchange events are published to; the routing key
// is the event type.
const Exchange = "goal_events"

type EventType string

const (
	GoalCompleted        EventType = "goal.completed"
	GroupGoalCompleted   EventType = "group_goal.completed"
	ContributionRecorded EventType = "contribution.recorded"
)

// Event is emitted after the transaction that produced it has committed.
type Event struct {
	Type          EventType       `json:"type"`
	UserID        int             `json:"user_id"`
	GoalID        *uuid.UUID      `json:"goal_id,omitempty"`
	GroupGoalID   *uuid.UUID      `json:"group_goal_id,omitempty"`
	LedgerEntryID *uuid.UUID      `json:"ledger_entry_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Anonymous     bool            `json:"anonymous,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
