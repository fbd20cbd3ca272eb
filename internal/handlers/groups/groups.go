package groups

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

//go:generate mockgen -source=groups.go -destination=mock_groups.go -package=groups
type Service interface {
	Create(ctx context.Context, creatorID int, name string, target decimal.Decimal, maxParticipants int) (*domain.GroupGoal, error)
	Join(ctx context.Context, userID int, inviteCode string) (*domain.GroupParticipant, error)
	Contribute(ctx context.Context, userID int, groupID uuid.UUID, amount decimal.Decimal, anonymous bool) (*domain.GroupContribution, error)
	Leave(ctx context.Context, userID int, groupID uuid.UUID) error
	Get(ctx context.Context, groupID uuid.UUID, viewerID int) (*domain.GroupGoal, []domain.GroupParticipant, error)
	Contributions(ctx context.Context, groupID uuid.UUID, viewerID int) ([]domain.LedgerEntry, error)
}

type GroupHandler struct {
	groupService Service
}

func New(groupService Service) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// Create handles POST /api/groups. The response carries the invite code.
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.groupService.Create(r.Context(), userID, req.Name, req.TargetAmount, req.MaxParticipants)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGroupGoalResponse(group, nil))
}

func (h *GroupHandler) Join(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.JoinGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	participant, err := h.groupService.Join(r.Context(), userID, req.InviteCode)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewParticipantResponse(participant))
}

// Get handles GET /api/groups/{id}. Only participants may read a group.
func (h *GroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groupID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	group, participants, err := h.groupService.Get(r.Context(), groupID, userID)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGroupGoalResponse(group, participants))
}

func (h *GroupHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groupID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	var req dto.ContributeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contribution, err := h.groupService.Contribute(r.Context(), userID, groupID, req.Amount, req.Anonymous)
	if err != nil {
		apierr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewContributionResponse(contribution))
}

// Contributions handles GET /api/groups/{id}/contributions. Anonymous
// entries come back without a contributor unless the viewer made them.
func (h *GroupHandler) Contributions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groupID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	entries, err := h.groupService.Contributions(r.Context(), groupID, userID)
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

func (h *GroupHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groupID, ok := apierr.PathID(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid group id")
		return
	}

	if err := h.groupService.Leave(r.Context(), userID, groupID); err != nil {
		apierr.Respond(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
