package guildservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"go.uber.org/zap"
)

// FlagEffectKind names the guarded-flag effect (raid mode) in the scheduler
// registry.
const FlagEffectKind = "guild_flag"

type Repo interface {
	GetConfig(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
	UpsertConfig(ctx context.Context, cfg *domain.GuildConfig) error
	SetRaidMode(ctx context.Context, guildID int64, active bool) error
}

type Scheduler interface {
	Schedule(ctx context.Context, subject, kind string, payload []byte, delay time.Duration) (int64, error)
}

type Service struct {
	repo         Repo
	scheduler    Scheduler
	startBalance int64
	taxRate      float64
}

func New(repo Repo, scheduler Scheduler, startBalance int64, taxRate float64) *Service {
	return &Service{
		repo:         repo,
		scheduler:    scheduler,
		startBalance: startBalance,
		taxRate:      taxRate,
	}
}

func (s *Service) Config(ctx context.Context, guildID int64) (*domain.GuildConfig, error) {
	cfg, err := s.repo.GetConfig(ctx, guildID)
	if err != nil {
		zap.L().Error("failed to get guild config", zap.Error(err))
		return nil, err
	}
	if cfg == nil {
		return &domain.GuildConfig{
			GuildID:        guildID,
			CurrencyName:   "Coins",
			CurrencySymbol: "$",
			StartBalance:   s.startBalance,
			TaxRate:        s.taxRate,
		}, nil
	}
	return cfg, nil
}

func (s *Service) Update(ctx context.Context, cfg *domain.GuildConfig) error {
	if cfg.StartBalance < 0 || cfg.TaxRate < 0 || cfg.TaxRate >= 1 {
		return domain.ErrInvalidAmount
	}
	if err := s.repo.UpsertConfig(ctx, cfg); err != nil {
		zap.L().Error("failed to update guild config", zap.Error(err))
		return err
	}
	return nil
}

// EnableRaidMode raises the raid flag for the given window. The flag is set
// through the scheduler effect so a restart still clears it on time.
func (s *Service) EnableRaidMode(ctx context.Context, guildID int64, window time.Duration) (int64, error) {
	if window <= 0 {
		return 0, domain.ErrInvalidFormat
	}

	payload, err := json.Marshal(flagPayload{GuildID: guildID})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal flag payload: %w", err)
	}

	subject := fmt.Sprintf("guild:%d", guildID)
	actionID, err := s.scheduler.Schedule(ctx, subject, FlagEffectKind, payload, window)
	if err != nil {
		zap.L().Error("failed to schedule raid mode", zap.Int64("guildID", guildID), zap.Error(err))
		return 0, err
	}

	zap.L().Info("raid mode enabled",
		zap.Int64("guildID", guildID),
		zap.Duration("window", window),
		zap.Int64("actionID", actionID),
	)
	return actionID, nil
}

type flagPayload struct {
	GuildID int64 `json:"guild_id"`
}

// RaidModeEffect sets the guarded flag that blocks join processing while a
// raid is suspected, and clears it when the deferred action fires. Clearing
// an already-clear flag is a no-op, so the undo is safe after a manual
// deactivation.
type RaidModeEffect struct {
	repo Repo
}

func NewRaidModeEffect(repo Repo) *RaidModeEffect {
	return &RaidModeEffect{repo: repo}
}

func (e *RaidModeEffect) Apply(ctx context.Context, subject string, payload []byte) error {
	guildID, err := parseFlagPayload(payload)
	if err != nil {
		return err
	}
	return e.repo.SetRaidMode(ctx, guildID, true)
}

func (e *RaidModeEffect) Undo(ctx context.Context, subject string, payload []byte) error {
	guildID, err := parseFlagPayload(payload)
	if err != nil {
		return err
	}
	return e.repo.SetRaidMode(ctx, guildID, false)
}

func parseFlagPayload(payload []byte) (int64, error) {
	var p flagPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return 0, fmt.Errorf("failed to parse flag payload: %w", err)
	}
	if p.GuildID == 0 {
		return 0, fmt.Errorf("flag payload missing guild_id")
	}
	return p.GuildID, nil
}
