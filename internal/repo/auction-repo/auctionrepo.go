package auctionrepo

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

func (r *Repository) Create(ctx context.Context, auction *domain.Auction) (*domain.Auction, error) {
	query := `
        INSERT INTO auctions (guild_id, seller_id, item, start_price, current_bid, highest_bidder, ends_at, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, auction.GuildID, auction.SellerID, auction.Item, auction.StartPrice, auction.CurrentBid, auction.HighestBidder, auction.EndsAt, auction.Status).Scan(&auction.ID)
	if err != nil {
		zap.L().Error("can't save auction", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return auction, nil
}

func (r *Repository) Get(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	query := `
        SELECT id, guild_id, seller_id, item, start_price, current_bid, highest_bidder, ends_at, status
        FROM auctions
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, auctionID)
	var auction domain.Auction
	err := row.Scan(&auction.ID, &auction.GuildID, &auction.SellerID, &auction.Item, &auction.StartPrice, &auction.CurrentBid, &auction.HighestBidder, &auction.EndsAt, &auction.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find auction", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &auction, nil
}

// SwapLeader installs a new leading bid, conditional on the auction still
// being active and the new amount still exceeding the stored bid. Returns
// (nil, nil) when the condition no longer holds.
func (r *Repository) SwapLeader(ctx context.Context, auctionID, bidderID, amount int64) (*domain.Auction, error) {
	query := `
        UPDATE auctions
        SET current_bid = $1, highest_bidder = $2
        WHERE id = $3 AND status = 'active' AND current_bid < $1
        RETURNING id, guild_id, seller_id, item, start_price, current_bid, highest_bidder, ends_at, status
    `
	row := r.db.QueryRow(ctx, query, amount, bidderID, auctionID)
	var auction domain.Auction
	err := row.Scan(&auction.ID, &auction.GuildID, &auction.SellerID, &auction.Item, &auction.StartPrice, &auction.CurrentBid, &auction.HighestBidder, &auction.EndsAt, &auction.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to swap auction leader", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &auction, nil
}

// Close flips the single active->closed transition. Returns (nil, nil) when
// the auction was already closed.
func (r *Repository) Close(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	query := `
        UPDATE auctions
        SET status = 'closed'
        WHERE id = $1 AND status = 'active'
        RETURNING id, guild_id, seller_id, item, start_price, current_bid, highest_bidder, ends_at, status
    `
	row := r.db.QueryRow(ctx, query, auctionID)
	var auction domain.Auction
	err := row.Scan(&auction.ID, &auction.GuildID, &auction.SellerID, &auction.Item, &auction.StartPrice, &auction.CurrentBid, &auction.HighestBidder, &auction.EndsAt, &auction.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to close auction", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return &auction, nil
}
