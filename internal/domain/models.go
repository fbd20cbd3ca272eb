package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Goal struct {
	ID               uuid.UUID       `db:"id"`
	OwnerID          int             `db:"owner_id"`
	Name             string          `db:"name"`
	RoundUpIncrement decimal.Decimal `db:"round_up_increment"`
	CreatedAt        time.Time       `db:"created_at"`
	Progress
}

type GroupRole string

const (
	RoleCreator GroupRole = "creator"
	RoleMember  GroupRole = "member"
)

type GroupGoal struct {
	ID              uuid.UUID `db:"id"`
	CreatorID       int       `db:"creator_id"`
	Name            string    `db:"name"`
	MaxParticipants int       `db:"max_participants"`
	InviteCode      string    `db:"invite_code"`
	CreatedAt       time.Time `db:"created_at"`
	Progress
}

type GroupParticipant struct {
	GroupGoalID       uuid.UUID       `db:"group_goal_id"`
	UserID            int             `db:"user_id"`
	Role              GroupRole       `db:"role"`
	ContributedAmount decimal.Decimal `db:"contributed_amount"`
	IsActive          bool            `db:"is_active"`
	JoinedAt          time.Time       `db:"joined_at"`
}

type LedgerKind string

const (
	KindRoundUp     LedgerKind = "round_up"
	KindManual      LedgerKind = "manual"
	KindGroupManual LedgerKind = "group_manual"
)

// LedgerEntry is immutable once stored. Exactly one of GoalID and
// GroupGoalID is set.
type LedgerEntry struct {
	ID                  uuid.UUID       `db:"id"`
	UserID              int             `db:"user_id"`
	GoalID              *uuid.UUID      `db:"goal_id"`
	GroupGoalID         *uuid.UUID      `db:"group_goal_id"`
	SourceTransactionID string          `db:"source_transaction_id"`
	SourceAmount        decimal.Decimal `db:"source_amount"`
	AllocationAmount    decimal.Decimal `db:"allocation_amount"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Kind                LedgerKind      `db:"kind"`
	Metadata            Metadata        `db:"metadata"`
	CreatedAt           time.Time       `db:"created_at"`
}

// Credit is one goal's share of an allocation.
type Credit struct {
	GoalID        uuid.UUID
	LedgerEntryID uuid.UUID
	Amount        decimal.Decimal
	Completed     bool
}

type AllocationResult struct {
	Kind                LedgerKind
	SourceTransactionID string
	Total               decimal.Decimal
	Credits             []Credit
}

// NoOp reports whether nothing was credited.
func (r *AllocationResult) NoOp() bool {
	return r == nil || len(r.Credits) == 0
}

type BatchOutcome string

const (
	OutcomeSucceeded BatchOutcome = "succeeded"
	OutcomeDuplicate BatchOutcome = "duplicate"
	OutcomeSkipped   BatchOutcome = "skipped"
	OutcomeFailed    BatchOutcome = "failed"
)

type BatchItem struct {
	SourceTransactionID string
	Outcome             BatchOutcome
	Result              *AllocationResult
	Err                 error
}

type BatchResult struct {
	Items []BatchItem
}

func (b *BatchResult) Count(outcome BatchOutcome) int {
	n := 0
	for _, item := range b.Items {
		if item.Outcome == outcome {
			n++
		}
	}
	return n
}

type GroupContribution struct {
	GroupGoalID   uuid.UUID
	LedgerEntryID uuid.UUID
	Amount        decimal.Decimal
	Anonymous     bool
	Completed     bool
}
