package ledgerrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jabonilla/ascend/internal/domain"
	"github.com/jabonilla/ascend/internal/pg"
)

const entryColumns = `id, user_id, goal_id, group_goal_id, source_transaction_id, source_amount, allocation_amount, total_amount, kind, metadata, created_at`

// Repository appends to and reads the allocation ledger. It has no update or
// delete path; the table rejects both.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// ClaimSourceTransaction records that the user's source transaction is being
// allocated. It returns false when the transaction was claimed before.
func (r *Repository) ClaimSourceTransaction(ctx context.Context, userID int, sourceTransactionID string) (bool, error) {
	query := `
		INSERT INTO round_up_claims (user_id, source_transaction_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, source_transaction_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, userID, sourceTransactionID)
	if err != nil {
		zap.L().Error("can't claim source transaction",
			zap.Int("user_id", userID), zap.String("source_transaction_id", sourceTransactionID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (id, user_id, goal_id, group_goal_id, source_transaction_id,
			source_amount, allocation_amount, total_amount, kind, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	var sourceTransactionID *string
	if entry.SourceTransactionID != "" {
		sourceTransactionID = &entry.SourceTransactionID
	}

	err := r.db.QueryRow(ctx, query,
		entry.ID, entry.UserID, entry.GoalID, entry.GroupGoalID, sourceTransactionID,
		entry.SourceAmount, entry.AllocationAmount, entry.TotalAmount, string(entry.Kind), entry.Metadata,
	).Scan(&entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ledger entry", zap.String("kind", string(entry.Kind)), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE goal_id = $1 ORDER BY created_at DESC, id`
	return r.find(ctx, query, goalID)
}

func (r *Repository) FindByGroupGoal(ctx context.Context, groupGoalID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE group_goal_id = $1 ORDER BY created_at DESC, id`
	return r.find(ctx, query, groupGoalID)
}

func (r *Repository) find(ctx context.Context, query string, id uuid.UUID) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		zap.L().Error("can't fetch ledger entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var (
			entry               domain.LedgerEntry
			sourceTransactionID *string
			kind                string
		)
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.GoalID, &entry.GroupGoalID, &sourceTransactionID,
			&entry.SourceAmount, &entry.AllocationAmount, &entry.TotalAmount, &kind, &entry.Metadata, &entry.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan ledger row", zap.Error(err))
			return nil, err
		}
		if sourceTransactionID != nil {
			entry.SourceTransactionID = *sourceTransactionID
		}
		entry.Kind = domain.LedgerKind(kind)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
