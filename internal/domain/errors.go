package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrGoalNotActive       = errors.New("goal is not active")
	ErrGroupGoalNotActive  = errors.New("group goal is not active")
	ErrGroupFull           = errors.New("group goal is full")
	ErrAlreadyMember       = errors.New("already a member of the group goal")
	ErrNotParticipant      = errors.New("not an active participant of the group goal")
	ErrCreatorCannotLeave  = errors.New("creator cannot leave the group goal")
	ErrInvalidInviteCode   = errors.New("invalid invite code")
	ErrDuplicateAllocation = errors.New("source transaction already allocated")
	ErrInvalidTransition   = errors.New("invalid goal status transition")
	ErrPersistence         = errors.New("persistence failure")
)

var businessErrors = []error{
	ErrValidation,
	ErrNotFound,
	ErrGoalNotActive,
	ErrGroupGoalNotActive,
	ErrGroupFull,
	ErrAlreadyMember,
	ErrNotParticipant,
	ErrCreatorCannotLeave,
	ErrInvalidInviteCode,
	ErrDuplicateAllocation,
	ErrInvalidTransition,
	ErrPersistence,
}

// Persistence marks err as a storage failure unless it already carries one of
// the domain errors above. The original error stays reachable.
func Persistence(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
