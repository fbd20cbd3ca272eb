package allocations

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/dto"
	"github.com/jabonilla/ascend/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AllocationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func request(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/allocations", bytes.NewBufferString(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestRoundUpHandler(t *testing.T) {
	handler, service := NewMock(t)
	goalA, goalB := uuid.New(), uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  *dto.AllocationResponseDTO
	}{
		{
			name: "Round-up split across two goals",
			body: `{"source_transaction_id":"txn-1","purchase_amount":"3.50"}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateRoundUp(gomock.Any(), 1, "txn-1", decimal.RequireFromString("3.50")).
					Return(&domain.AllocationResult{
						Kind:                domain.KindRoundUp,
						SourceTransactionID: "txn-1",
						Total:               decimal.RequireFromString("0.5"),
						Credits: []domain.Credit{
							{GoalID: goalA, Amount: decimal.RequireFromString("0.25")},
							{GoalID: goalB, Amount: decimal.RequireFromString("0.25")},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AllocationResponseDTO{
				Kind:                "round_up",
				SourceTransactionID: "txn-1",
				Total:               "0.50",
				Credits: []dto.CreditDTO{
					{GoalID: goalA, Amount: "0.25"},
					{GoalID: goalB, Amount: "0.25"},
				},
			},
		},
		{
			name: "Purchase amount as JSON number",
			body: `{"source_transaction_id":"txn-2","purchase_amount":5}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateRoundUp(gomock.Any(), 1, "txn-2", gomock.Any()).
					Return(&domain.AllocationResult{Kind: domain.KindRoundUp, SourceTransactionID: "txn-2", Total: decimal.Zero}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.AllocationResponseDTO{
				Kind:                "round_up",
				SourceTransactionID: "txn-2",
				Total:               "0.00",
				Credits:             []dto.CreditDTO{},
			},
		},
		{
			name:          "Malformed body",
			body:          `not json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Duplicate source transaction",
			body: `{"source_transaction_id":"txn-1","purchase_amount":"3.50"}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateRoundUp(gomock.Any(), 1, "txn-1", gomock.Any()).
					Return(nil, domain.ErrDuplicateAllocation)
			},
			expectedCode:  http.StatusConflict,
			expectedError: domain.ErrDuplicateAllocation.Error(),
		},
		{
			name: "Storage failure",
			body: `{"source_transaction_id":"txn-1","purchase_amount":"3.50"}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateRoundUp(gomock.Any(), 1, "txn-1", gomock.Any()).
					Return(nil, domain.Persistence(errors.New("timeout")))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.RoundUp(w, request(tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedBody != nil {
				var body dto.AllocationResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestManualHandler(t *testing.T) {
	handler, service := NewMock(t)
	goalID := uuid.New()

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Manual contribution",
			body: fmt.Sprintf(`{"goal_id":%q,"amount":"25.00","note":"birthday"}`, goalID),
			prepareMock: func() {
				service.EXPECT().
					AllocateManual(gomock.Any(), 1, goalID, decimal.RequireFromString("25.00"), "birthday").
					Return(&domain.AllocationResult{
						Kind:    domain.KindManual,
						Total:   decimal.RequireFromString("25"),
						Credits: []domain.Credit{{GoalID: goalID, Amount: decimal.RequireFromString("25"), Completed: true}},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Goal not active",
			body: fmt.Sprintf(`{"goal_id":%q,"amount":"25.00"}`, goalID),
			prepareMock: func() {
				service.EXPECT().
					AllocateManual(gomock.Any(), 1, goalID, gomock.Any(), "").
					Return(nil, domain.ErrGoalNotActive)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrGoalNotActive.Error(),
		},
		{
			name: "Sub-cent amount",
			body: fmt.Sprintf(`{"goal_id":%q,"amount":"0.001"}`, goalID),
			prepareMock: func() {
				service.EXPECT().
					AllocateManual(gomock.Any(), 1, goalID, gomock.Any(), "").
					Return(nil, fmt.Errorf("%w: amount has more than 2 decimal places", domain.ErrValidation))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "decimal places",
		},
		{
			name:          "Malformed goal id",
			body:          `{"goal_id":"abc","amount":"1"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Manual(w, request(tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AllocationResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body.Credits, 1)
				assert.True(t, body.Credits[0].Completed)
				assert.Equal(t, "25.00", body.Total)
			}
		})
	}
}

func TestBatchHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.BatchResponseDTO
	}{
		{
			name: "Mixed outcomes",
			body: `{"source_transaction_ids":["a","b","c","d"]}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateBatch(gomock.Any(), 1, []string{"a", "b", "c", "d"}).
					Return(&domain.BatchResult{Items: []domain.BatchItem{
						{SourceTransactionID: "a", Outcome: domain.OutcomeSucceeded, Result: &domain.AllocationResult{Kind: domain.KindRoundUp, SourceTransactionID: "a", Total: decimal.RequireFromString("0.7")}},
						{SourceTransactionID: "b", Outcome: domain.OutcomeDuplicate, Err: domain.ErrDuplicateAllocation},
						{SourceTransactionID: "c", Outcome: domain.OutcomeSkipped},
						{SourceTransactionID: "d", Outcome: domain.OutcomeFailed, Err: errors.New("feed unavailable")},
					}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BatchResponseDTO{
				Succeeded: 1,
				Duplicate: 1,
				Skipped:   1,
				Failed:    1,
				Items: []dto.BatchItemDTO{
					{SourceTransactionID: "a", Outcome: "succeeded", Allocation: &dto.AllocationResponseDTO{Kind: "round_up", SourceTransactionID: "a", Total: "0.70", Credits: []dto.CreditDTO{}}},
					{SourceTransactionID: "b", Outcome: "duplicate", Error: domain.ErrDuplicateAllocation.Error()},
					{SourceTransactionID: "c", Outcome: "skipped"},
					{SourceTransactionID: "d", Outcome: "failed", Error: "feed unavailable"},
				},
			},
		},
		{
			name: "Empty batch",
			body: `{"source_transaction_ids":[]}`,
			prepareMock: func() {
				service.EXPECT().
					AllocateBatch(gomock.Any(), 1, []string{}).
					Return(nil, fmt.Errorf("%w: no source transactions", domain.ErrValidation))
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			w := httptest.NewRecorder()
			handler.Batch(w, request(tt.body))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.BatchResponseDTO
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
