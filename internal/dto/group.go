package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateGroupRequestDTO struct {
	Name            string          `json:"name" example:"Team trip"`
	TargetAmount    decimal.Decimal `json:"target_amount" example:"2000.00"`
	MaxParticipants int             `json:"max_participants" example:"6"`
}

type JoinGroupRequestDTO struct {
	InviteCode string `json:"invite_code" example:"K7M2QX9A"`
}

type ContributeRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" example:"30.00"`
	Anonymous bool            `json:"anonymous"`
}

type ParticipantDTO struct {
	UserID            int       `json:"user_id"`
	Role              string    `json:"role" example:"member"`
	ContributedAmount string    `json:"contributed_amount" example:"30.00"`
	IsActive          bool      `json:"is_active"`
	JoinedAt          time.Time `json:"joined_at"`
}

func NewParticipantResponse(p *domain.GroupParticipant) ParticipantDTO {
	return ParticipantDTO{
		UserID:            p.UserID,
		Role:              string(p.Role),
		ContributedAmount: money(p.ContributedAmount),
		IsActive:          p.IsActive,
		JoinedAt:          p.JoinedAt,
	}
}

type GroupGoalResponseDTO struct {
	ID              uuid.UUID        `json:"id"`
	CreatorID       int              `json:"creator_id"`
	Name            string           `json:"name"`
	TargetAmount    string           `json:"target_amount"`
	CurrentAmount   string           `json:"current_amount"`
	Status          string           `json:"status" example:"active"`
	MaxParticipants int              `json:"max_participants"`
	InviteCode      string           `json:"invite_code"`
	CreatedAt       time.Time        `json:"created_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	Participants    []ParticipantDTO `json:"participants,omitempty"`
}

func NewGroupGoalResponse(g *domain.GroupGoal, participants []domain.GroupParticipant) GroupGoalResponseDTO {
	resp := GroupGoalResponseDTO{
		ID:              g.ID,
		CreatorID:       g.CreatorID,
		Name:            g.Name,
		TargetAmount:    money(g.TargetAmount),
		CurrentAmount:   money(g.CurrentAmount),
		Status:          string(g.Status),
		MaxParticipants: g.MaxParticipants,
		InviteCode:      g.InviteCode,
		CreatedAt:       g.CreatedAt,
		CompletedAt:     g.CompletedAt,
	}
	for i := range participants {
		resp.Participants = append(resp.Participants, NewParticipantResponse(&participants[i]))
	}
	return resp
}

type ContributionResponseDTO struct {
	GroupGoalID   uuid.UUID `json:"group_goal_id"`
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	Amount        string    `json:"amount"`
	Anonymous     bool      `json:"anonymous"`
	Completed     bool      `json:"completed"`
}

func NewContributionResponse(c *domain.GroupContribution) ContributionResponseDTO {
	return ContributionResponseDTO{
		GroupGoalID:   c.GroupGoalID,
		LedgerEntryID: c.LedgerEntryID,
		Amount:        money(c.Amount),
		Anonymous:     c.Anonymous,
		Completed:     c.Completed,
	}
}
