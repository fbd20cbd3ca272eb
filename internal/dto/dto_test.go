package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyIsFixedToCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.7", "1.70"},
		{"5", "5.00"},
		{"0.333", "0.33"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money(decimal.RequireFromString(tt.in)))
	}
}

func TestNewLedgerResponseMasksContributor(t *testing.T) {
	groupID := uuid.New()
	entries := []domain.LedgerEntry{
		{ID: uuid.New(), UserID: 5, GroupGoalID: &groupID, Kind: domain.KindGroupManual},
		{ID: uuid.New(), UserID: 0, GroupGoalID: &groupID, Kind: domain.KindGroupManual},
	}

	resp := NewLedgerResponse(entries)

	require.Len(t, resp, 2)
	require.NotNil(t, resp[0].UserID)
	assert.Equal(t, 5, *resp[0].UserID)
	assert.Nil(t, resp[1].UserID)
	assert.Equal(t, "0.00", resp[1].TotalAmount)
}

func TestNewBatchResponseCounts(t *testing.T) {
	batch := &domain.BatchResult{Items: []domain.BatchItem{
		{SourceTransactionID: "a", Outcome: domain.OutcomeSucceeded, Result: &domain.AllocationResult{Kind: domain.KindRoundUp, Total: decimal.RequireFromString("0.5")}},
		{SourceTransactionID: "b", Outcome: domain.OutcomeSucceeded, Result: &domain.AllocationResult{Kind: domain.KindRoundUp, Total: decimal.Zero}},
		{SourceTransactionID: "c", Outcome: domain.OutcomeFailed, Err: errors.New("feed unavailable")},
	}}

	resp := NewBatchResponse(batch)

	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
	assert.Zero(t, resp.Duplicate)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "0.50", resp.Items[0].Allocation.Total)
	assert.Nil(t, resp.Items[2].Allocation)
	assert.Equal(t, "feed unavailable", resp.Items[2].Error)
}
