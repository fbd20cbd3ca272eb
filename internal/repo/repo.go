package repo

import (
	"github.com/jabonilla/ascend/internal/pg"
	goalrepo "github.com/jabonilla/ascend/internal/repo/goal-repo"
	groupgoalrepo "github.com/jabonilla/ascend/internal/repo/groupgoal-repo"
	ledgerrepo "github.com/jabonilla/ascend/internal/repo/ledger-repo"
)

type Repositories struct {
	GoalRepo      *goalrepo.Repository
	GroupGoalRepo *groupgoalrepo.Repository
	LedgerRepo    *ledgerrepo.Repository
	TxManager     pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		GoalRepo:      goalrepo.New(conn),
		GroupGoalRepo: groupgoalrepo.New(conn),
		LedgerRepo:    ledgerrepo.New(conn),
		TxManager:     txManager,
	}
}
