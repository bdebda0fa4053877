package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, userID, guildID int64) (*domain.Account, error) {
	query := `
        SELECT user_id, guild_id, balance, total_earned, total_spent, created_at
        FROM accounts
        WHERE user_id = $1 AND guild_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, guildID)
	var acc domain.Account
	err := row.Scan(&acc.UserID, &acc.GuildID, &acc.Balance, &acc.TotalEarned, &acc.TotalSpent, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &acc, nil
}

func (r *Repository) Create(ctx context.Context, userID, guildID, startBalance int64) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (user_id, guild_id, balance)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, guild_id) DO NOTHING
        RETURNING user_id, guild_id, balance, total_earned, total_spent, created_at
    `
	row := r.db.QueryRow(ctx, query, userID, guildID, startBalance)
	var acc domain.Account
	err := row.Scan(&acc.UserID, &acc.GuildID, &acc.Balance, &acc.TotalEarned, &acc.TotalSpent, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the insert race; the existing row wins.
			return r.Get(ctx, userID, guildID)
		}
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &acc, nil
}

// ApplyCredit raises balance and total_earned in a single statement.
func (r *Repository) ApplyCredit(ctx context.Context, userID, guildID, amount int64) (*domain.Account, error) {
	query := `
        UPDATE accounts
        SET balance = balance + $1, total_earned = total_earned + $1
        WHERE user_id = $2 AND guild_id = $3
        RETURNING user_id, guild_id, balance, total_earned, total_spent, created_at
    `
	row := r.db.QueryRow(ctx, query, amount, userID, guildID)
	var acc domain.Account
	err := row.Scan(&acc.UserID, &acc.GuildID, &acc.Balance, &acc.TotalEarned, &acc.TotalSpent, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to apply credit", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &acc, nil
}

// ApplyDebit lowers balance and raises total_spent, conditional on the
// balance covering the amount. The check and the mutation are one statement,
// so no interleaving can observe or produce a negative balance. Returns
// (nil, nil) when the balance is insufficient.
func (r *Repository) ApplyDebit(ctx context.Context, userID, guildID, amount int64) (*domain.Account, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $1, total_spent = total_spent + $1
        WHERE user_id = $2 AND guild_id = $3 AND balance >= $1
        RETURNING user_id, guild_id, balance, total_earned, total_spent, created_at
    `
	row := r.db.QueryRow(ctx, query, amount, userID, guildID)
	var acc domain.Account
	err := row.Scan(&acc.UserID, &acc.GuildID, &acc.Balance, &acc.TotalEarned, &acc.TotalSpent, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to apply debit", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &acc, nil
}
