package transactionrepo

import (
	"context"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, guild_id, kind, amount, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, trans.UserID, trans.GuildID, trans.Kind, trans.Amount, trans.Reason, trans.CreatedAt).Scan(&trans.ID)
	if err != nil {
		zap.L().Error("can't append transaction", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return trans, nil
}

func (r *Repository) ListByAccount(ctx context.Context, userID, guildID int64, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, guild_id, kind, amount, reason, created_at
        FROM transactions
        WHERE user_id = $1 AND guild_id = $2
        ORDER BY created_at DESC, id DESC
        LIMIT $3
    `
	rows, err := r.db.Query(ctx, query, userID, guildID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var trans domain.Transaction
		err := rows.Scan(&trans.ID, &trans.UserID, &trans.GuildID, &trans.Kind, &trans.Amount, &trans.Reason, &trans.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, domain.StorageError(err)
		}
		transactions = append(transactions, trans)
	}
	return transactions, nil
}

// NetSum returns sum(credits) - sum(debits) for the account, the value the
// current balance must reconcile against.
func (r *Repository) NetSum(ctx context.Context, userID, guildID int64) (int64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN kind = 'credit' THEN amount ELSE -amount END), 0)
        FROM transactions
        WHERE user_id = $1 AND guild_id = $2
    `
	var sum int64
	err := r.db.QueryRow(ctx, query, userID, guildID).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return 0, domain.StorageError(err)
	}
	return sum, nil
}
