package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockTransactionRepo, *MockGuildRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	guildRepo := NewMockGuildRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, transactionRepo, guildRepo, txManager, 1000, 0.05)
	defer ctrl.Finish()
	return service, accountRepo, transactionRepo, guildRepo, txManager
}

func inTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestGetOrCreate(t *testing.T) {
	service, accountRepo, _, guildRepo, _ := NewMock(t)

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name: "Existing account returned as is",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 250,
				}, nil)
			},
			expectedBalance: 250,
		},
		{
			name: "New account gets default start balance",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, nil)
				guildRepo.EXPECT().GetConfig(gomock.Any(), int64(10)).Return(nil, nil)
				accountRepo.EXPECT().Create(gomock.Any(), int64(1), int64(10), int64(1000)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 1000,
				}, nil)
			},
			expectedBalance: 1000,
		},
		{
			name: "New account gets guild start balance",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, nil)
				guildRepo.EXPECT().GetConfig(gomock.Any(), int64(10)).Return(&domain.GuildConfig{
					GuildID: 10, StartBalance: 500,
				}, nil)
				accountRepo.EXPECT().Create(gomock.Any(), int64(1), int64(10), int64(500)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 500,
				}, nil)
			},
			expectedBalance: 500,
		},
		{
			name: "Error fetching account",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			account, err := service.GetOrCreate(context.Background(), 1, 10)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, account.Balance)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, accountRepo, transactionRepo, _, txManager := NewMock(t)

	existing := func() {
		accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{
			UserID: 1, GuildID: 10, Balance: 100,
		}, nil)
	}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful credit",
			amount: 100,
			prepareMock: func() {
				existing()
				inTx(txManager)
				accountRepo.EXPECT().ApplyCredit(gomock.Any(), int64(1), int64(10), int64(100)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 200,
				}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 1}, nil)
			},
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			amount:        -5,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Credit rolls back when the log append fails",
			amount: 100,
			prepareMock: func() {
				existing()
				inTx(txManager)
				accountRepo.EXPECT().ApplyCredit(gomock.Any(), int64(1), int64(10), int64(100)).Return(&domain.Account{}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("append failed"))
			},
			expectedError: errors.New("append failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			trans, err := service.Credit(context.Background(), 1, 10, tt.amount, "test")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TransactionCredit, trans.Kind)
				assert.Equal(t, tt.amount, trans.Amount)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, accountRepo, transactionRepo, _, txManager := NewMock(t)

	existing := func() {
		accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{
			UserID: 1, GuildID: 10, Balance: 100,
		}, nil)
	}

	tests := []struct {
		name          string
		amount        int64
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Successful debit",
			amount: 50,
			prepareMock: func() {
				existing()
				inTx(txManager)
				accountRepo.EXPECT().ApplyDebit(gomock.Any(), int64(1), int64(10), int64(50)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 50,
				}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{ID: 2}, nil)
			},
		},
		{
			name:   "Insufficient funds leaves no transaction",
			amount: 500,
			prepareMock: func() {
				existing()
				inTx(txManager)
				accountRepo.EXPECT().ApplyDebit(gomock.Any(), int64(1), int64(10), int64(500)).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:          "Invalid amount rejected",
			amount:        0,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			trans, err := service.Debit(context.Background(), 1, 10, tt.amount, "test")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TransactionDebit, trans.Kind)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	service, accountRepo, transactionRepo, guildRepo, txManager := NewMock(t)

	bothExist := func() {
		guildRepo.EXPECT().GetConfig(gomock.Any(), int64(10)).Return(nil, nil)
		accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{UserID: 1, GuildID: 10, Balance: 1000}, nil)
		accountRepo.EXPECT().Get(gomock.Any(), int64(2), int64(10)).Return(&domain.Account{UserID: 2, GuildID: 10, Balance: 1000}, nil)
	}

	tests := []struct {
		name          string
		from, to      int64
		amount        int64
		prepareMock   func()
		expectedTax   int64
		expectedNet   int64
		expectedError error
	}{
		{
			name: "Tax is floored and the net is credited",
			from: 1, to: 2, amount: 110,
			prepareMock: func() {
				bothExist()
				inTx(txManager)
				accountRepo.EXPECT().ApplyDebit(gomock.Any(), int64(1), int64(10), int64(110)).Return(&domain.Account{}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
				accountRepo.EXPECT().ApplyCredit(gomock.Any(), int64(2), int64(10), int64(105)).Return(&domain.Account{}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
			},
			expectedTax: 5,
			expectedNet: 105,
		},
		{
			name: "Small transfer carries no tax",
			from: 1, to: 2, amount: 19,
			prepareMock: func() {
				bothExist()
				inTx(txManager)
				accountRepo.EXPECT().ApplyDebit(gomock.Any(), int64(1), int64(10), int64(19)).Return(&domain.Account{}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
				accountRepo.EXPECT().ApplyCredit(gomock.Any(), int64(2), int64(10), int64(19)).Return(&domain.Account{}, nil)
				transactionRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(&domain.Transaction{}, nil)
			},
			expectedTax: 0,
			expectedNet: 19,
		},
		{
			name: "Self transfer rejected",
			from: 1, to: 1, amount: 100,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidTarget,
		},
		{
			name: "Sender cannot cover the amount",
			from: 1, to: 2, amount: 5000,
			prepareMock: func() {
				bothExist()
				inTx(txManager)
				accountRepo.EXPECT().ApplyDebit(gomock.Any(), int64(1), int64(10), int64(5000)).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			receipt, err := service.Transfer(context.Background(), 10, tt.from, tt.to, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTax, receipt.Tax)
				assert.Equal(t, tt.expectedNet, receipt.Net)
				assert.Equal(t, tt.amount, receipt.Debit.Amount)
				assert.Equal(t, tt.expectedNet, receipt.Credit.Amount)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	service, accountRepo, transactionRepo, _, _ := NewMock(t)

	tests := []struct {
		name               string
		prepareMock        func()
		expectedConsistent bool
		expectedError      error
	}{
		{
			name: "Balance matches the log",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 1250, TotalEarned: 400, TotalSpent: 150,
				}, nil)
				transactionRepo.EXPECT().NetSum(gomock.Any(), int64(1), int64(10)).Return(int64(250), nil)
			},
			expectedConsistent: true,
		},
		{
			name: "Totals drifted from the log",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(&domain.Account{
					UserID: 1, GuildID: 10, Balance: 1250, TotalEarned: 999, TotalSpent: 0,
				}, nil)
				transactionRepo.EXPECT().NetSum(gomock.Any(), int64(1), int64(10)).Return(int64(250), nil)
			},
			expectedConsistent: false,
		},
		{
			name: "Unknown account",
			prepareMock: func() {
				accountRepo.EXPECT().Get(gomock.Any(), int64(1), int64(10)).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			report, err := service.Reconcile(context.Background(), 1, 10)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedConsistent, report.Consistent)
			}
		})
	}
}
