package groups

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/dto"
	"github.com/jabonilla/ascend/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*GroupHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(method, body, id string) *http.Request {
	r := httptest.NewRequest(method, "/api/groups", bytes.NewBufferString(body))
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return r.WithContext(ctx)
}

var groupID = uuid.MustParse("0b6a3f1e-2c4d-4e5f-8a9b-1c2d3e4f5a6b")

func sampleGroup() *domain.GroupGoal {
	return &domain.GroupGoal{
		ID:              groupID,
		CreatorID:       1,
		Name:            "Team trip",
		MaxParticipants: 4,
		InviteCode:      "K7M2QX9A",
		CreatedAt:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Progress: domain.Progress{
			TargetAmount:  decimal.RequireFromString("2000"),
			CurrentAmount: decimal.Zero,
			Status:        domain.GoalActive,
		},
	}
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Group created",
			body: `{"name":"Team trip","target_amount":"2000.00","max_participants":4}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Team trip", decimal.RequireFromString("2000.00"), 4).
					Return(sampleGroup(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Too few participants",
			body: `{"name":"Team trip","target_amount":"2000.00","max_participants":1}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, "Team trip", gomock.Any(), 1).
					Return(nil, fmt.Errorf("%w: max participants must be at least 2", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "at least 2",
		},
		{
			name:          "Malformed body",
			body:          `[]`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Create(w, request(http.MethodPost, tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.GroupGoalResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "K7M2QX9A", body.InviteCode)
				assert.Equal(t, "0.00", body.CurrentAmount)
				assert.Empty(t, body.Participants)
			}
		})
	}
}

func TestJoinHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Joined",
			body: `{"invite_code":"k7m2qx9a"}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), 1, "k7m2qx9a").Return(&domain.GroupParticipant{
					GroupGoalID:       groupID,
					UserID:            1,
					Role:              domain.RoleMember,
					ContributedAmount: decimal.Zero,
					IsActive:          true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown code",
			body: `{"invite_code":"ZZZZZZZZ"}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), 1, "ZZZZZZZZ").Return(nil, domain.ErrInvalidInviteCode)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already member",
			body: `{"invite_code":"K7M2QX9A"}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), 1, "K7M2QX9A").Return(nil, domain.ErrAlreadyMember)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Group full",
			body: `{"invite_code":"K7M2QX9A"}`,
			prepareMock: func() {
				service.EXPECT().Join(gomock.Any(), 1, "K7M2QX9A").Return(nil, domain.ErrGroupFull)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Join(w, request(http.MethodPost, tt.body, ""))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Participant reads group",
			id:   groupID.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), groupID, 1).Return(sampleGroup(), []domain.GroupParticipant{
					{GroupGoalID: groupID, UserID: 1, Role: domain.RoleCreator, ContributedAmount: decimal.Zero, IsActive: true},
					{GroupGoalID: groupID, UserID: 2, Role: domain.RoleMember, ContributedAmount: decimal.RequireFromString("30"), IsActive: false},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Outsider",
			id:   groupID.String(),
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), groupID, 1).Return(nil, nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid id",
			id:           "x",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Get(w, request(http.MethodGet, "", tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.GroupGoalResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body.Participants, 2)
				assert.Equal(t, "creator", body.Participants[0].Role)
				assert.Equal(t, "30.00", body.Participants[1].ContributedAmount)
				assert.False(t, body.Participants[1].IsActive)
			}
		})
	}
}

func TestContributeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Anonymous contribution",
			id:   groupID.String(),
			body: `{"amount":"30.00","anonymous":true}`,
			prepareMock: func() {
				service.EXPECT().
					Contribute(gomock.Any(), 1, groupID, decimal.RequireFromString("30.00"), true).
					Return(&domain.GroupContribution{
						GroupGoalID:   groupID,
						LedgerEntryID: uuid.New(),
						Amount:        decimal.RequireFromString("30"),
						Anonymous:     true,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Not a participant",
			id:   groupID.String(),
			body: `{"amount":"30.00"}`,
			prepareMock: func() {
				service.EXPECT().
					Contribute(gomock.Any(), 1, groupID, gomock.Any(), false).
					Return(nil, domain.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Completed group",
			id:   groupID.String(),
			body: `{"amount":"30.00"}`,
			prepareMock: func() {
				service.EXPECT().
					Contribute(gomock.Any(), 1, groupID, gomock.Any(), false).
					Return(nil, domain.ErrGroupGoalNotActive)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrGroupGoalNotActive.Error(),
		},
		{
			name:         "Malformed body",
			id:           groupID.String(),
			body:         `{"amount":"thirty"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid id",
			id:           "x",
			body:         `{"amount":"30.00"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Contribute(w, request(http.MethodPost, tt.body, tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.ContributionResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "30.00", body.Amount)
				assert.True(t, body.Anonymous)
			}
		})
	}
}

func TestContributionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Masked entry has no contributor",
			prepareMock: func() {
				service.EXPECT().Contributions(gomock.Any(), groupID, 1).Return([]domain.LedgerEntry{
					{ID: uuid.New(), UserID: 1, GroupGoalID: &groupID, AllocationAmount: decimal.RequireFromString("10"), TotalAmount: decimal.RequireFromString("10"), Kind: domain.KindGroupManual},
					{ID: uuid.New(), UserID: 0, GroupGoalID: &groupID, AllocationAmount: decimal.RequireFromString("5"), TotalAmount: decimal.RequireFromString("5"), Kind: domain.KindGroupManual},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Nothing contributed yet",
			prepareMock: func() {
				service.EXPECT().Contributions(gomock.Any(), groupID, 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Contributions(gomock.Any(), groupID, 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Contributions(w, request(http.MethodGet, "", groupID.String()))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.LedgerEntryResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body, 2)
				require.NotNil(t, body[0].UserID)
				assert.Equal(t, 1, *body[0].UserID)
				assert.Nil(t, body[1].UserID)
			}
		})
	}
}

func TestLeaveHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Member leaves",
			prepareMock: func() {
				service.EXPECT().Leave(gomock.Any(), 1, groupID).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Creator cannot leave",
			prepareMock: func() {
				service.EXPECT().Leave(gomock.Any(), 1, groupID).Return(domain.ErrCreatorCannotLeave)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Not a participant",
			prepareMock: func() {
				service.EXPECT().Leave(gomock.Any(), 1, groupID).Return(domain.ErrNotParticipant)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Leave(w, request(http.MethodPost, "", groupID.String()))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
