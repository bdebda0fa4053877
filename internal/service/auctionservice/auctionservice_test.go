package auctionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedger, *MockScheduler, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	scheduler := NewMockScheduler(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(repo, ledger, scheduler, txManager)
	defer ctrl.Finish()
	return service, repo, ledger, scheduler, txManager
}

func inTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestOpen(t *testing.T) {
	service, repo, _, scheduler, _ := NewMock(t)

	tests := []struct {
		name          string
		startPrice    int64
		duration      time.Duration
		prepareMock   func()
		expectedError error
	}{
		{
			name:       "Successful open schedules the close",
			startPrice: 500,
			duration:   2 * time.Hour,
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) (*domain.Auction, error) {
					a.ID = 7
					return a, nil
				})
				scheduler.EXPECT().Schedule(gomock.Any(), "auction:7", EffectKind, gomock.Any(), 2*time.Hour).Return(int64(42), nil)
			},
		},
		{
			name:          "Negative start price rejected",
			startPrice:    -1,
			duration:      time.Hour,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Non-positive duration rejected",
			startPrice:    100,
			duration:      0,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidFormat,
		},
		{
			name:       "Schedule failure voids the auction",
			startPrice: 500,
			duration:   time.Hour,
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Auction) (*domain.Auction, error) {
					a.ID = 8
					return a, nil
				})
				scheduler.EXPECT().Schedule(gomock.Any(), "auction:8", EffectKind, gomock.Any(), time.Hour).Return(int64(0), errors.New("scheduler down"))
				repo.EXPECT().Close(gomock.Any(), int64(8)).Return(&domain.Auction{}, nil)
			},
			expectedError: errors.New("scheduler down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			auction, err := service.Open(context.Background(), 10, 1, "VIP role", tt.startPrice, tt.duration)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.AuctionActive, auction.Status)
				assert.Equal(t, tt.startPrice, auction.CurrentBid)
			}
		})
	}
}

func TestBid(t *testing.T) {
	service, repo, ledger, _, txManager := NewMock(t)

	prevBidder := int64(2)
	active := func(bidder *int64, bid int64) *domain.Auction {
		return &domain.Auction{
			ID: 7, GuildID: 10, SellerID: 1, Item: "VIP role",
			StartPrice: 500, CurrentBid: bid, HighestBidder: bidder,
			EndsAt: service.now().Add(time.Hour), Status: domain.AuctionActive,
		}
	}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "First bid needs no refund",
			amount: 600,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(active(nil, 500), nil)
				inTx(txManager)
				ledger.EXPECT().Debit(gomock.Any(), int64(3), int64(10), int64(600), "bid on auction #7").Return(&domain.Transaction{}, nil)
				repo.EXPECT().SwapLeader(gomock.Any(), int64(7), int64(3), int64(600)).Return(active(nil, 600), nil)
			},
		},
		{
			name:   "New leader is debited before the old one is refunded",
			amount: 700,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(active(&prevBidder, 600), nil)
				inTx(txManager)
				debit := ledger.EXPECT().Debit(gomock.Any(), int64(3), int64(10), int64(700), "bid on auction #7").Return(&domain.Transaction{}, nil)
				swap := repo.EXPECT().SwapLeader(gomock.Any(), int64(7), int64(3), int64(700)).Return(active(&prevBidder, 700), nil).After(debit)
				ledger.EXPECT().Credit(gomock.Any(), int64(2), int64(10), int64(600), "outbid refund, auction #7").Return(&domain.Transaction{}, nil).After(swap)
			},
		},
		{
			name:   "Failed debit never refunds the leader",
			amount: 700,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(active(&prevBidder, 600), nil)
				inTx(txManager)
				ledger.EXPECT().Debit(gomock.Any(), int64(3), int64(10), int64(700), "bid on auction #7").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Bid at the current price rejected",
			amount: 600,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(active(&prevBidder, 600), nil)
			},
			expectedError: domain.ErrBidTooLow,
		},
		{
			name:   "Closed auction rejects bids",
			amount: 700,
			prepareMock: func() {
				a := active(&prevBidder, 600)
				a.Status = domain.AuctionClosed
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(a, nil)
			},
			expectedError: domain.ErrAuctionClosed,
		},
		{
			name:   "Expired auction rejects bids",
			amount: 700,
			prepareMock: func() {
				a := active(&prevBidder, 600)
				a.EndsAt = service.now().Add(-time.Minute)
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(a, nil)
			},
			expectedError: domain.ErrAuctionClosed,
		},
		{
			name:   "Lost swap race rolls the debit back",
			amount: 700,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(active(&prevBidder, 600), nil)
				inTx(txManager)
				ledger.EXPECT().Debit(gomock.Any(), int64(3), int64(10), int64(700), "bid on auction #7").Return(&domain.Transaction{}, nil)
				repo.EXPECT().SwapLeader(gomock.Any(), int64(7), int64(3), int64(700)).Return(nil, nil)
			},
			expectedError: domain.ErrAuctionClosed,
		},
		{
			name:   "Unknown auction",
			amount: 700,
			prepareMock: func() {
				repo.EXPECT().Get(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Bid(context.Background(), 7, 3, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloseSettle(t *testing.T) {
	service, repo, ledger, _, txManager := NewMock(t)

	bidder := int64(3)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Seller is paid the final bid",
			prepareMock: func() {
				inTx(txManager)
				repo.EXPECT().Close(gomock.Any(), int64(7)).Return(&domain.Auction{
					ID: 7, GuildID: 10, SellerID: 1, Item: "VIP role",
					CurrentBid: 750, HighestBidder: &bidder,
				}, nil)
				ledger.EXPECT().Credit(gomock.Any(), int64(1), int64(10), int64(750), "auction sale: VIP role").Return(&domain.Transaction{}, nil)
			},
		},
		{
			name: "No bids means no payout",
			prepareMock: func() {
				inTx(txManager)
				repo.EXPECT().Close(gomock.Any(), int64(7)).Return(&domain.Auction{
					ID: 7, GuildID: 10, SellerID: 1, CurrentBid: 500,
				}, nil)
			},
		},
		{
			name: "Second close is a no-op",
			prepareMock: func() {
				inTx(txManager)
				repo.EXPECT().Close(gomock.Any(), int64(7)).Return(nil, nil)
			},
		},
		{
			name: "Credit failure rolls the close back",
			prepareMock: func() {
				inTx(txManager)
				repo.EXPECT().Close(gomock.Any(), int64(7)).Return(&domain.Auction{
					ID: 7, GuildID: 10, SellerID: 1, Item: "VIP role",
					CurrentBid: 750, HighestBidder: &bidder,
				}, nil)
				ledger.EXPECT().Credit(gomock.Any(), int64(1), int64(10), int64(750), gomock.Any()).Return(nil, errors.New("credit failed"))
			},
			expectedError: errors.New("credit failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.CloseSettle(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCloseEffect(t *testing.T) {
	service, repo, _, _, txManager := NewMock(t)
	effect := NewCloseEffect(service)

	assert.NoError(t, effect.Apply(context.Background(), "auction:7", []byte(`{"auction_id":7}`)))

	inTx(txManager)
	repo.EXPECT().Close(gomock.Any(), int64(7)).Return(nil, nil)
	assert.NoError(t, effect.Undo(context.Background(), "auction:7", []byte(`{"auction_id":7}`)))

	assert.Error(t, effect.Undo(context.Background(), "auction:7", []byte(`not json`)))
}
