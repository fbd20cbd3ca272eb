package dto

import (
	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/shopspring/decimal"
)

type RoundUpRequestDTO struct {
	SourceTransactionID string          `json:"source_transaction_id" example:"txn_123"`
	PurchaseAmount      decimal.Decimal `json:"purchase_amount" example:"4.30"`
}

type ManualRequestDTO struct {
	GoalID uuid.UUID       `json:"goal_id"`
	Amount decimal.Decimal `json:"amount" example:"25.00"`
	Note   string          `json:"note,omitempty"`
}

type BatchRequestDTO struct {
	SourceTransactionIDs []string `json:"source_transaction_ids"`
}

type CreditDTO struct {
	GoalID        uuid.UUID `json:"goal_id"`
	LedgerEntryID uuid.UUID `json:"ledger_entry_id"`
	Amount        string    `json:"amount" example:"0.70"`
	Completed     bool      `json:"completed"`
}

type AllocationResponseDTO struct {
	Kind                string      `json:"kind" example:"round_up"`
	SourceTransactionID string      `json:"source_transaction_id,omitempty"`
	Total               string      `json:"total" example:"0.70"`
	Credits             []CreditDTO `json:"credits"`
}

func NewAllocationResponse(r *domain.AllocationResult) AllocationResponseDTO {
	resp := AllocationResponseDTO{
		Kind:                string(r.Kind),
		SourceTransactionID: r.SourceTransactionID,
		Total:               money(r.Total),
		Credits:             make([]CreditDTO, 0, len(r.Credits)),
	}
	for _, c := range r.Credits {
		resp.Credits = append(resp.Credits, CreditDTO{
			GoalID:        c.GoalID,
			LedgerEntryID: c.LedgerEntryID,
			Amount:        money(c.Amount),
			Completed:     c.Completed,
		})
	}
	return resp
}

type BatchItemDTO struct {
	SourceTransactionID string                 `json:"source_transaction_id"`
	Outcome             string                 `json:"outcome" example:"succeeded"`
	Allocation          *AllocationResponseDTO `json:"allocation,omitempty"`
	Error               string                 `json:"error,omitempty"`
}

type BatchResponseDTO struct {
	Succeeded int            `json:"succeeded"`
	Duplicate int            `json:"duplicate"`
	Skipped   int            `json:"skipped"`
	Failed    int            `json:"failed"`
	Items     []BatchItemDTO `json:"items"`
}

func NewBatchResponse(b *domain.BatchResult) BatchResponseDTO {
	resp := BatchResponseDTO{
		Succeeded: b.Count(domain.OutcomeSucceeded),
		Duplicate: b.Count(domain.OutcomeDuplicate),
		Skipped:   b.Count(domain.OutcomeSkipped),
		Failed:    b.Count(domain.OutcomeFailed),
		Items:     make([]BatchItemDTO, 0, len(b.Items)),
	}
	for _, item := range b.Items {
		out := BatchItemDTO{
			SourceTransactionID: item.SourceTransactionID,
			Outcome:             string(item.Outcome),
		}
		if item.Result != nil {
			allocation := NewAllocationResponse(item.Result)
			out.Allocation = &allocation
		}
		if item.Err != nil {
			out.Error = item.Err.Error()
		}
		resp.Items = append(resp.Items, out)
	}
	return resp
}
