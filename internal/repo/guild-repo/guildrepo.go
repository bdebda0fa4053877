package guildrepo

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

func (r *Repository) GetConfig(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	query := `
        SELECT guild_id, currency_name, currency_symbol, start_balance, tax_rate, raid_mode
        FROM guild_configs
        WHERE guild_id = $1
    `
	row := r.db.QueryRow(ctx, query, guildID)
	var cfg domain.GuildConfig
	err := row.Scan(&cfg.GuildID, &cfg.CurrencyName, &cfg.CurrencySymbol, &cfg.StartBalance, &cfg.TaxRate, &cfg.RaidMode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get guild config", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &cfg, nil
}

func (r *Repository) UpsertConfig(ctx context.Context, cfg *domain.GuildConfig) error {
	query := `
        INSERT INTO guild_configs (guild_id, currency_name, currency_symbol, start_balance, tax_rate)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (guild_id)
        DO UPDATE SET currency_name = EXCLUDED.currency_name,
                      currency_symbol = EXCLUDED.currency_symbol,
                      start_balance = EXCLUDED.start_balance,
                      tax_rate = EXCLUDED.tax_rate
    `
	_, err := r.db.Exec(ctx, query, cfg.GuildID, cfg.CurrencyName, cfg.CurrencySymbol, cfg.StartBalance, cfg.TaxRate)
	if err != nil {
		zap.L().Error("can't save guild config", zap.Error(err))
		return domain.StorageError(err)
	}
	return nil
}

// SetRaidMode flips the guarded join-processing flag. The row is created on
// first use so the flag works before any explicit config call.
func (r *Repository) SetRaidMode(ctx context.Context, guildID int64, active bool) error {
	query := `
        INSERT INTO guild_configs (guild_id, raid_mode)
        VALUES ($1, $2)
        ON CONFLICT (guild_id)
        DO UPDATE SET raid_mode = EXCLUDED.raid_mode
    `
	if _, err := r.db.Exec(ctx, query, guildID, active); err != nil {
		zap.L().Error("failed to set raid mode", zap.Error(err))
		return domain.StorageError(err)
	}
	return nil
}
