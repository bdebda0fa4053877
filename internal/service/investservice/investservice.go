package investservice

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"go.uber.org/zap"
)

// EffectKind names the deferred settlement effect in the scheduler registry.
const EffectKind = "investment_settle"

type Repo interface {
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	FindActiveByUser(ctx context.Context, userID, guildID int64) ([]domain.Investment, error)
	Settle(ctx context.Context, investmentID int64) (*domain.Investment, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
	Debit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
}

type Scheduler interface {
	Schedule(ctx context.Context, subject, kind string, payload []byte, delay time.Duration) (int64, error)
}

type tier struct {
	maturity time.Duration
	minRate  float64
	maxRate  float64
}

var tiers = map[domain.RiskTier]tier{
	domain.RiskLow:    {maturity: 24 * time.Hour, minRate: 0.05, maxRate: 0.15},
	domain.RiskMedium: {maturity: 48 * time.Hour, minRate: 0.15, maxRate: 0.40},
	domain.RiskHigh:   {maturity: 72 * time.Hour, minRate: 0.40, maxRate: 1.00},
}

type settlePayload struct {
	InvestmentID int64 `json:"investment_id"`
}

type Service struct {
	repo      Repo
	ledger    Ledger
	scheduler Scheduler
	txManager pg.TXManager
	now       func() time.Time
	rnd       func() float64
}

func New(repo Repo, ledger Ledger, scheduler Scheduler, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		scheduler: scheduler,
		txManager: txManager,
		now:       time.Now,
		rnd:       rand.Float64,
	}
}

// Open debits the principal immediately and commits to a return rate drawn
// from the tier's range right now, so the outcome cannot be observed and
// gamed later. Settlement is a deferred action; nothing settles before
// maturity.
func (s *Service) Open(ctx context.Context, userID, guildID, amount int64, risk domain.RiskTier) (*domain.Investment, error) {
	t, ok := tiers[risk]
	if !ok {
		return nil, fmt.Errorf("%w: unknown risk tier %q", domain.ErrInvalidFormat, risk)
	}

	if _, err := s.ledger.Debit(ctx, userID, guildID, amount, fmt.Sprintf("investment (%s risk)", risk)); err != nil {
		return nil, err
	}

	inv := &domain.Investment{
		UserID:     userID,
		GuildID:    guildID,
		Principal:  amount,
		Risk:       risk,
		ReturnRate: t.minRate + s.rnd()*(t.maxRate-t.minRate),
		MaturesAt:  s.now().Add(t.maturity),
		Status:     domain.InvestmentActive,
		CreatedAt:  s.now(),
	}
	if _, err := s.repo.Create(ctx, inv); err != nil {
		s.refund(ctx, userID, guildID, amount)
		return nil, err
	}

	payload, err := json.Marshal(settlePayload{InvestmentID: inv.ID})
	if err != nil {
		return nil, err
	}
	subject := fmt.Sprintf("investment:%d", inv.ID)
	if _, err := s.scheduler.Schedule(ctx, subject, EffectKind, payload, t.maturity); err != nil {
		if _, sErr := s.repo.Settle(ctx, inv.ID); sErr != nil {
			zap.L().Error("failed to void unscheduled investment", zap.Int64("investmentID", inv.ID), zap.Error(sErr))
		}
		s.refund(ctx, userID, guildID, amount)
		return nil, err
	}

	return inv, nil
}

func (s *Service) refund(ctx context.Context, userID, guildID, amount int64) {
	if _, err := s.ledger.Credit(ctx, userID, guildID, amount, "investment refund"); err != nil {
		zap.L().Error("failed to refund investment principal", zap.Int64("userID", userID), zap.Error(err))
	}
}

func (s *Service) List(ctx context.Context, userID, guildID int64) ([]domain.Investment, error) {
	investments, err := s.repo.FindActiveByUser(ctx, userID, guildID)
	if err != nil {
		zap.L().Error("failed to fetch investments", zap.Error(err))
		return nil, err
	}
	return investments, nil
}

// Settle performs the single active->settled transition and credits the
// payout in one database transaction. Calling it again is a no-op.
func (s *Service) Settle(ctx context.Context, investmentID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		inv, err := s.repo.Settle(ctx, investmentID)
		if err != nil {
			return err
		}
		if inv == nil {
			return nil
		}

		payout := int64(float64(inv.Principal) * (1 + inv.ReturnRate))
		_, err = s.ledger.Credit(ctx, inv.UserID, inv.GuildID, payout, fmt.Sprintf("investment return (%s risk)", inv.Risk))
		return err
	})
}

// SettleEffect adapts investment settlement to the scheduler. Apply is a
// no-op: the principal debit already happened at open.
type SettleEffect struct {
	invest *Service
}

func NewSettleEffect(invest *Service) *SettleEffect {
	return &SettleEffect{invest: invest}
}

func (e *SettleEffect) Apply(ctx context.Context, subject string, payload []byte) error {
	return nil
}

func (e *SettleEffect) Undo(ctx context.Context, subject string, payload []byte) error {
	var p settlePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to parse settle payload: %w", err)
	}
	return e.invest.Settle(ctx, p.InvestmentID)
}
