package missionrepo

import (
	"context"
	"errors"
	"time"

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

func (r *Repository) GetForDay(ctx context.Context, userID, guildID int64, day time.Time) (*domain.Mission, error) {
	query := `
        SELECT id, user_id, guild_id, kind, goal, target, progress, reward, claimed, day
        FROM missions
        WHERE user_id = $1 AND guild_id = $2 AND day = $3
    `
	row := r.db.QueryRow(ctx, query, userID, guildID, day)
	var mission domain.Mission
	err := row.Scan(&mission.ID, &mission.UserID, &mission.GuildID, &mission.Kind, &mission.Goal, &mission.Target, &mission.Progress, &mission.Reward, &mission.Claimed, &mission.Day)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find mission", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &mission, nil
}

func (r *Repository) Create(ctx context.Context, mission *domain.Mission) (*domain.Mission, error) {
	query := `
        INSERT INTO missions (user_id, guild_id, kind, goal, target, progress, reward, claimed, day)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (user_id, guild_id, day) DO NOTHING
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, mission.UserID, mission.GuildID, mission.Kind, mission.Goal, mission.Target, mission.Progress, mission.Reward, mission.Claimed, mission.Day).Scan(&mission.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Mission for today already exists.
			return r.GetForDay(ctx, mission.UserID, mission.GuildID, mission.Day)
		}
		zap.L().Error("can't save mission", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return mission, nil
}

func (r *Repository) AddProgress(ctx context.Context, missionID int64, count int) (*domain.Mission, error) {
	query := `
        UPDATE missions
        SET progress = progress + $1
        WHERE id = $2
        RETURNING id, user_id, guild_id, kind, goal, target, progress, reward, claimed, day
    `
	row := r.db.QueryRow(ctx, query, count, missionID)
	var mission domain.Mission
	err := row.Scan(&mission.ID, &mission.UserID, &mission.GuildID, &mission.Kind, &mission.Goal, &mission.Target, &mission.Progress, &mission.Reward, &mission.Claimed, &mission.Day)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("failed to update mission progress", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &mission, nil
}

// Claim marks the reward as paid out. The conditional update keeps the
// payout single-shot under concurrent progress reports.
func (r *Repository) Claim(ctx context.Context, missionID int64) (bool, error) {
	query := `
        UPDATE missions
        SET claimed = TRUE
        WHERE id = $1 AND claimed = FALSE AND progress >= target
    `
	tag, err := r.db.Exec(ctx, query, missionID)
	if err != nil {
		zap.L().Error("failed to claim mission", zap.Error(err))
		return false, domain.StorageError(err)
	}
	return tag.RowsAffected() == 1, nil
}
