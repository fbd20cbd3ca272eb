package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
)

// Progress is the balance/status pair shared by personal and group goals.
// All status changes go through transition.
type Progress struct {
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Status        GoalStatus      `db:"status"`
	CompletedAt   *time.Time      `db:"completed_at"`
}

var allowedTransitions = map[GoalStatus][]GoalStatus{
	GoalActive:    {GoalPaused, GoalCompleted},
	GoalPaused:    {GoalActive},
	GoalCompleted: {},
}

func (p *Progress) Reached() bool {
	return p.CurrentAmount.GreaterThanOrEqual(p.TargetAmount)
}

func (p *Progress) transition(to GoalStatus, now time.Time) error {
	allowed := false
	for _, s := range allowedTransitions[p.Status] {
		if s == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, p.Status, to)
	}

	switch to {
	case GoalCompleted:
		if !p.Reached() {
			return fmt.Errorf("%w: target not reached", ErrInvalidTransition)
		}
		completedAt := now
		p.CompletedAt = &completedAt
	default:
		if p.Reached() {
			return fmt.Errorf("%w: target already reached", ErrInvalidTransition)
		}
	}
	p.Status = to
	return nil
}

// Credit adds amount to an active goal and completes it when the target is
// reached. completed is true only on the call that performed the transition.
func (p *Progress) Credit(amount decimal.Decimal, now time.Time) (completed bool, err error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if p.Status != GoalActive {
		return false, ErrGoalNotActive
	}

	p.CurrentAmount = p.CurrentAmount.Add(amount)
	if !p.Reached() {
		return false, nil
	}
	if err := p.transition(GoalCompleted, now); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Progress) Pause(now time.Time) error {
	return p.transition(GoalPaused, now)
}

func (p *Progress) Resume(now time.Time) error {
	return p.transition(GoalActive, now)
}
