package goals

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

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=goals
type Service interface {
	Create(ctx context.Context, ownerID int, name string, target, increment decimal.Decimal) (*domain.Goal, error)
	Get(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error)
	List(ctx context.Context, ownerID int) ([]domain.Goal, error)
	Pause(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error)
	Resume(ctx context.Context, ownerID int, goalID uuid.UUID) (*domain.Goal, error)
	History(ctx context.Context, ownerID int, goalID uuid.UUID) ([]domain.LedgerEntry, error)
}

type GoalHandler struct {
	goalService Service
}

func New(goalService Service) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Create handles POST /api/goals. A zero increment takes the configured default.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Create(r.Context(), userID, req.Name, req.TargetAmount, req.RoundUpIncrement)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGoalResponse(goal))
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	goals, err := h.goalService.List(r.Context(), userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(goals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	resp := make([]dto.GoalResponseDTO, 0, len(goals))
	for i := range goals {
		resp = append(resp, dto.NewGoalResponse(&goals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withGoal(w, r, h.goalService.Get)
}

func (h *GoalHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.withGoal(w, r, h.goalService.Pause)
}

func (h *GoalHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.withGoal(w, r, h.goalService.Resume)
}

func (h *GoalHandler) withGoal(w http.ResponseWriter, r *http.Request, op func(context.Context, int, uuid.UUID) (*domain.Goal, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	goalID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	goal, err := op(r.Context(), userID, goalID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoalResponse(goal))
}

// Ledger handles GET /api/goals/{id}/ledger, newest entries first.
func (h *GoalHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	goalID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid goal id")
		return
	}

	entries, err := h.goalService.History(r.Context(), userID, goalID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLedgerResponse(entries))
}
