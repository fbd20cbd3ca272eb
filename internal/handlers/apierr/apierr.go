// Package apierr maps domain errors onto HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/pkg/utils"
)

var statuses = []struct {
	err  error
	code int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrInvalidInviteCode, http.StatusNotFound},
	{domain.ErrNotParticipant, http.StatusForbidden},
	{domain.ErrDuplicateAllocation, http.StatusConflict},
	{domain.ErrAlreadyMember, http.StatusConflict},
	{domain.ErrGroupFull, http.StatusConflict},
	{domain.ErrGoalNotActive, http.StatusUnprocessableEntity},
	{domain.ErrGroupGoalNotActive, http.StatusUnprocessableEntity},
	{domain.ErrCreatorCannotLeave, http.StatusUnprocessableEntity},
	{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
}

func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}

// Respond writes err as a JSON error. Unclassified errors are not echoed.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}

// PathID parses the {id} route parameter.
func PathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}
