package allocations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/dto"
	"github.com/jabonilla/ascend/internal/handlers/apierr"
	"github.com/jabonilla/ascend/pkg/auth"
	"github.com/jabonilla/ascend/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=allocations.go -destination=mock_allocations.go -package=allocations
type Service interface {
	AllocateRoundUp(ctx context.Context, userID int, sourceTransactionID string, purchaseAmount decimal.Decimal) (*domain.AllocationResult, error)
	AllocateManual(ctx context.Context, userID int, goalID uuid.UUID, amount decimal.Decimal, note string) (*domain.AllocationResult, error)
	AllocateBatch(ctx context.Context, userID int, sourceTransactionIDs []string) (*domain.BatchResult, error)
}

type AllocationHandler struct {
	allocationService Service
}

func New(allocationService Service) *AllocationHandler {
	return &AllocationHandler{
		allocationService: allocationService,
	}
}

// RoundUp handles POST /api/allocations/round-up. A purchase that rounds to
// nothing, or a user without active goals, yields an empty credit list.
func (h *AllocationHandler) RoundUp(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RoundUpRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.allocationService.AllocateRoundUp(r.Context(), userID, req.SourceTransactionID, req.PurchaseAmount)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAllocationResponse(result))
}

func (h *AllocationHandler) Manual(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ManualRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.allocationService.AllocateManual(r.Context(), userID, req.GoalID, req.Amount, req.Note)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAllocationResponse(result))
}

// Batch handles POST /api/allocations/batch. Per-item failures are reported
// in the body; only a rejected request fails as a whole.
func (h *AllocationHandler) Batch(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.allocationService.AllocateBatch(r.Context(), userID, req.SourceTransactionIDs)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBatchResponse(result))
}
