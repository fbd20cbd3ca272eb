package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	allocationhandlers "github.com/jabonilla/ascend/internal/handlers/allocations"
	goalhandlers "github.com/jabonilla/ascend/internal/handlers/goals"
	grouphandlers "github.com/jabonilla/ascend/internal/handlers/groups"
	"github.com/jabonilla/ascend/internal/service"
	"github.com/jabonilla/ascend/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type GoalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
	Ledger(w http.ResponseWriter, r *http.Request)
}

type AllocationHandler interface {
	RoundUp(w http.ResponseWriter, r *http.Request)
	Manual(w http.ResponseWriter, r *http.Request)
	Batch(w http.ResponseWriter, r *http.Request)
}

type GroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Contribute(w http.ResponseWriter, r *http.Request)
	Contributions(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	GoalHandler       GoalHandler
	AllocationHandler AllocationHandler
	GroupHandler      GroupHandler

	tokens  auth.TokenValidator
	metrics http.Handler
}

func New(s *service.Services, tokens auth.TokenValidator, metrics http.Handler) *Handlers {
	return &Handlers{
		GoalHandler:       goalhandlers.New(s.GoalService),
		AllocationHandler: allocationhandlers.New(s.AllocationService),
		GroupHandler:      grouphandlers.New(s.GroupService),
		tokens:            tokens,
		metrics:           metrics,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(h.tokens))

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", h.GoalHandler.Create)
			r.Get("/", h.GoalHandler.List)
			r.Get("/{id}", h.GoalHandler.Get)
			r.Post("/{id}/pause", h.GoalHandler.Pause)
			r.Post("/{id}/resume", h.GoalHandler.Resume)
			r.Get("/{id}/ledger", h.GoalHandler.Ledger)
		})
		r.Route("/allocations", func(r chi.Router) {
			r.Post("/round-up", h.AllocationHandler.RoundUp)
			r.Post("/manual", h.AllocationHandler.Manual)
			r.Post("/batch", h.AllocationHandler.Batch)
		})
		r.Route("/groups", func(r chi.Router) {
			r.Post("/", h.GroupHandler.Create)
			r.Post("/join", h.GroupHandler.Join)
			r.Get("/{id}", h.GroupHandler.Get)
			r.Post("/{id}/contributions", h.GroupHandler.Contribute)
			r.Get("/{id}/contributions", h.GroupHandler.Contributions)
			r.Post("/{id}/leave", h.GroupHandler.Leave)
		})
	})

	return r
}
