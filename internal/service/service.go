package service

import (
	"github.com/shopspring/decimal"

	"github.com/jabonilla/ascend/internal/handlers/allocations"
	"github.com/jabonilla/ascend/internal/handlers/goals"
	"github.com/jabonilla/ascend/internal/handlers/groups"
	"github.com/jabonilla/ascend/internal/metrics"

	"github.com/jabonilla/ascend/internal/repo"
	"github.com/jabonilla/ascend/internal/service/allocationservice"
	"github.com/jabonilla/ascend/internal/service/goalservice"
	"github.com/jabonilla/ascend/internal/service/groupservice"
)

type Options struct {
	DefaultIncrement decimal.Decimal
	BatchConcurrency int
}

type Services struct {
	GoalService       goals.Service
	AllocationService allocations.Service
	GroupService      groups.Service
}

func New(
	repo *repo.Repositories,
	notifier allocationservice.Notifier,
	feed allocationservice.TransactionFeed,
	m *metrics.Metrics,
	opts Options,
) *Services {
	goalService := goalservice.New(repo.GoalRepo, repo.LedgerRepo, repo.TxManager, opts.DefaultIncrement)
	allocationService := allocationservice.New(repo.GoalRepo, repo.LedgerRepo, repo.TxManager, notifier, feed, m, opts.BatchConcurrency)
	groupService := groupservice.New(repo.GroupGoalRepo, repo.LedgerRepo, repo.TxManager, notifier, m)

	return &Services{
		GoalService:       goalService,
		AllocationService: allocationService,
		GroupService:      groupService,
	}
}
