package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jabonilla/ascend/internal/handlers/allocations"
	"github.com/jabonilla/ascend/internal/handlers/goals"
	"github.com/jabonilla/ascend/internal/handlers/groups"
	"github.com/jabonilla/ascend/internal/metrics"
	"github.com/jabonilla/ascend/internal/service"
	"github.com/jabonilla/ascend/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		GoalService:       goals.NewMockService(ctrl),
		AllocationService: allocations.NewMockService(ctrl),
		GroupService:      groups.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"), metrics.New().Handler())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.GoalHandler)
	assert.NotNil(t, h.AllocationHandler)
	assert.NotNil(t, h.GroupHandler)
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalHandler := NewMockGoalHandler(ctrl)
	mockAllocationHandler := NewMockAllocationHandler(ctrl)
	mockGroupHandler := NewMockGroupHandler(ctrl)

	mockGoalHandler.EXPECT().Create(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGoalHandler.EXPECT().List(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGoalHandler.EXPECT().Get(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGoalHandler.EXPECT().Pause(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGoalHandler.EXPECT().Resume(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGoalHandler.EXPECT().Ledger(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAllocationHandler.EXPECT().RoundUp(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAllocationHandler.EXPECT().Manual(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockAllocationHandler.EXPECT().Batch(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Create(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Join(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Get(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Contribute(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Contributions(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()
	mockGroupHandler.EXPECT().Leave(gomock.Any(), gomock.Any()).Do(ok).AnyTimes()

	tokens := auth.NewJWTService("secret")
	h := &Handlers{
		GoalHandler:       mockGoalHandler,
		AllocationHandler: mockAllocationHandler,
		GroupHandler:      mockGroupHandler,
		tokens:            tokens,
		metrics:           metrics.New().Handler(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	token, err := tokens.GenerateJWT(7, time.Now().Add(time.Hour))
	require.NoError(t, err)

	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/goals"},
		{"GET", "/api/goals"},
		{"GET", "/api/goals/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e"},
		{"POST", "/api/goals/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/pause"},
		{"POST", "/api/goals/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/resume"},
		{"GET", "/api/goals/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/ledger"},
		{"POST", "/api/allocations/round-up"},
		{"POST", "/api/allocations/manual"},
		{"POST", "/api/allocations/batch"},
		{"POST", "/api/groups"},
		{"POST", "/api/groups/join"},
		{"GET", "/api/groups/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e"},
		{"POST", "/api/groups/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/contributions"},
		{"GET", "/api/groups/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/contributions"},
		{"POST", "/api/groups/6f1c2b8e-3d4a-4b5c-9d6e-7f8a9b0c1d2e/leave"},
	}

	for _, tt := range routes {
		t.Run(tt.method+" "+tt.url+" unauthorized", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
		t.Run(tt.method+" "+tt.url+" authorized", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("GET /metrics is public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
