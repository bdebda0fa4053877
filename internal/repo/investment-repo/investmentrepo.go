package investmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

func (r *Repository) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	query := `
        INSERT INTO investments (user_id, guild_id, principal, risk, return_rate, matures_at, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, inv.UserID, inv.GuildID, inv.Principal, inv.Risk, inv.ReturnRate, inv.MaturesAt, inv.Status, inv.CreatedAt).Scan(&inv.ID)
	if err != nil {
		zap.L().Error("can't save investment", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return inv, nil
}

func (r *Repository) FindActiveByUser(ctx context.Context, userID, guildID int64) ([]domain.Investment, error) {
	query := `
        SELECT id, user_id, guild_id, principal, risk, return_rate, matures_at, status, created_at
        FROM investments
        WHERE user_id = $1 AND guild_id = $2 AND status = 'active'
        ORDER BY matures_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID, guildID)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var investments []domain.Investment
	for rows.Next() {
		var inv domain.Investment
		err := rows.Scan(&inv.ID, &inv.UserID, &inv.GuildID, &inv.Principal, &inv.Risk, &inv.ReturnRate, &inv.MaturesAt, &inv.Status, &inv.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan investment row", zap.Error(err))
			return nil, domain.StorageError(err)
		}
		investments = append(investments, inv)
	}
	return investments, nil
}

// Settle flips the single active->settled transition. Returns (nil, nil)
// when the investment was already settled, so callers stay idempotent.
func (r *Repository) Settle(ctx context.Context, investmentID int64) (*domain.Investment, error) {
	query := `
        UPDATE investments
        SET status = 'settled'
        WHERE id = $1 AND status = 'active'
        RETURNING id, user_id, guild_id, principal, risk, return_rate, matures_at, status, created_at
    `
	row := r.db.QueryRow(ctx, query, investmentID)
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.UserID, &inv.GuildID, &inv.Principal, &inv.Risk, &inv.ReturnRate, &inv.MaturesAt, &inv.Status, &inv.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to settle investment", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &inv, nil
}
