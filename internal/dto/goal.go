package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateGoalRequestDTO struct {
	Name             string          `json:"name" example:"Vacation"`
	TargetAmount     decimal.Decimal `json:"target_amount" example:"1500.00"`
	RoundUpIncrement decimal.Decimal `json:"round_up_increment,omitempty" example:"1.00"`
}

type GoalResponseDTO struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	TargetAmount     string     `json:"target_amount" example:"1500.00"`
	CurrentAmount    string     `json:"current_amount" example:"12.40"`
	RoundUpIncrement string     `json:"round_up_increment" example:"1.00"`
	Status           string     `json:"status" example:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

func NewGoalResponse(g *domain.Goal) GoalResponseDTO {
	return GoalResponseDTO{
		ID:               g.ID,
		Name:             g.Name,
		TargetAmount:     money(g.TargetAmount),
		CurrentAmount:    money(g.CurrentAmount),
		RoundUpIncrement: money(g.RoundUpIncrement),
		Status:           string(g.Status),
		CreatedAt:        g.CreatedAt,
		CompletedAt:      g.CompletedAt,
	}
}

type LedgerEntryResponseDTO struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              *int            `json:"user_id,omitempty"`
	GoalID              *uuid.UUID      `json:"goal_id,omitempty"`
	GroupGoalID         *uuid.UUID      `json:"group_goal_id,omitempty"`
	SourceTransactionID string          `json:"source_transaction_id,omitempty"`
	SourceAmount        string          `json:"source_amount"`
	AllocationAmount    string          `json:"allocation_amount"`
	TotalAmount         string          `json:"total_amount"`
	Kind                string          `json:"kind" example:"round_up"`
	Metadata            domain.Metadata `json:"metadata"`
	CreatedAt           time.Time       `json:"created_at"`
}

// NewLedgerResponse omits the contributor when the entry was masked.
func NewLedgerResponse(entries []domain.LedgerEntry) []LedgerEntryResponseDTO {
	out := make([]LedgerEntryResponseDTO, 0, len(entries))
	for _, e := range entries {
		item := LedgerEntryResponseDTO{
			ID:                  e.ID,
			GoalID:              e.GoalID,
			GroupGoalID:         e.GroupGoalID,
			SourceTransactionID: e.SourceTransactionID,
			SourceAmount:        money(e.SourceAmount),
			AllocationAmount:    money(e.AllocationAmount),
			TotalAmount:         money(e.TotalAmount),
			Kind:                string(e.Kind),
			Metadata:            e.Metadata,
			CreatedAt:           e.CreatedAt,
		}
		if e.UserID != 0 {
			userID := e.UserID
			item.UserID = &userID
		}
		out = append(out, item)
	}
	return out
}
