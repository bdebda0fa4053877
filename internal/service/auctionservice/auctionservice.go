package auctionservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"github.com/centraldiv/botcore/pkg/lockset"
	"go.uber.org/zap"
)

// EffectKind names the deferred auction-close effect in the scheduler
// registry.
const EffectKind = "auction_close"

type Repo interface {
	Create(ctx context.Context, auction *domain.Auction) (*domain.Auction, error)
	Get(ctx context.Context, auctionID int64) (*domain.Auction, error)
	SwapLeader(ctx context.Context, auctionID, bidderID, amount int64) (*domain.Auction, error)
	Close(ctx context.Context, auctionID int64) (*domain.Auction, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
	Debit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
}

type Scheduler interface {
	Schedule(ctx context.Context, subject, kind string, payload []byte, delay time.Duration) (int64, error)
}

type closePayload struct {
	AuctionID int64 `json:"auction_id"`
}

type Service struct {
	repo      Repo
	ledger    Ledger
	scheduler Scheduler
	txManager pg.TXManager
	locks     *lockset.Set
	now       func() time.Time
}

func New(repo Repo, ledger Ledger, scheduler Scheduler, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		ledger:    ledger,
		scheduler: scheduler,
		txManager: txManager,
		locks:     lockset.New(),
		now:       time.Now,
	}
}

func auctionKey(auctionID int64) string {
	return fmt.Sprintf("auction:%d", auctionID)
}

func (s *Service) Open(ctx context.Context, guildID, sellerID int64, item string, startPrice int64, duration time.Duration) (*domain.Auction, error) {
	if startPrice < 0 {
		return nil, domain.ErrInvalidAmount
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidFormat
	}

	auction := &domain.Auction{
		GuildID:    guildID,
		SellerID:   sellerID,
		Item:       item,
		StartPrice: startPrice,
		CurrentBid: startPrice,
		EndsAt:     s.now().Add(duration),
		Status:     domain.AuctionActive,
	}
	if _, err := s.repo.Create(ctx, auction); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(closePayload{AuctionID: auction.ID})
	if err != nil {
		return nil, err
	}
	subject := fmt.Sprintf("auction:%d", auction.ID)
	if _, err := s.scheduler.Schedule(ctx, subject, EffectKind, payload, duration); err != nil {
		if _, cErr := s.repo.Close(ctx, auction.ID); cErr != nil {
			zap.L().Error("failed to void unscheduled auction", zap.Int64("auctionID", auction.ID), zap.Error(cErr))
		}
		return nil, err
	}

	return auction, nil
}

func (s *Service) Get(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	auction, err := s.repo.Get(ctx, auctionID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrNotFound
	}
	return auction, nil
}

// Bid installs a new leading bid. The new bidder is debited before any
// auction state changes, and the previous bidder is refunded only after that
// debit is committed to the same transaction — a failed debit can never have
// already triggered a refund, so no double-spend window exists.
func (s *Service) Bid(ctx context.Context, auctionID, bidderID, amount int64) error {
	unlock := s.locks.Lock(auctionKey(auctionID))
	defer unlock()

	auction, err := s.repo.Get(ctx, auctionID)
	if err != nil {
		return err
	}
	if auction == nil {
		return domain.ErrNotFound
	}
	if auction.Status != domain.AuctionActive || s.now().After(auction.EndsAt) {
		return domain.ErrAuctionClosed
	}
	if amount <= auction.CurrentBid {
		return domain.ErrBidTooLow
	}

	prevBidder := auction.HighestBidder
	prevBid := auction.CurrentBid

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledger.Debit(ctx, bidderID, auction.GuildID, amount, fmt.Sprintf("bid on auction #%d", auctionID)); err != nil {
			return err
		}

		swapped, err := s.repo.SwapLeader(ctx, auctionID, bidderID, amount)
		if err != nil {
			return err
		}
		if swapped == nil {
			// Closed or outbid between the read and the swap; the debit
			// rolls back with the transaction.
			return domain.ErrAuctionClosed
		}

		if prevBidder != nil {
			if _, err := s.ledger.Credit(ctx, *prevBidder, auction.GuildID, prevBid, fmt.Sprintf("outbid refund, auction #%d", auctionID)); err != nil {
				return err
			}
		}
		return nil
	})
}

// CloseSettle performs the single active->closed transition: the seller is
// credited with the final bid, or nothing moves if there never was a bidder.
// Calling it again is a no-op.
func (s *Service) CloseSettle(ctx context.Context, auctionID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		auction, err := s.repo.Close(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return nil
		}
		if auction.HighestBidder == nil {
			zap.L().Info("auction closed without bids", zap.Int64("auctionID", auctionID))
			return nil
		}

		_, err = s.ledger.Credit(ctx, auction.SellerID, auction.GuildID, auction.CurrentBid, fmt.Sprintf("auction sale: %s", auction.Item))
		return err
	})
}

// CloseEffect adapts auction close to the scheduler. Apply is a no-op: the
// auction opened the moment its row was written.
type CloseEffect struct {
	auctions *Service
}

func NewCloseEffect(auctions *Service) *CloseEffect {
	return &CloseEffect{auctions: auctions}
}

func (e *CloseEffect) Apply(ctx context.Context, subject string, payload []byte) error {
	return nil
}

func (e *CloseEffect) Undo(ctx context.Context, subject string, payload []byte) error {
	var p closePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("failed to parse close payload: %w", err)
	}
	return e.auctions.CloseSettle(ctx, p.AuctionID)
}
