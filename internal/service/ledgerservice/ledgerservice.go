package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"github.com/centraldiv/botcore/pkg/lockset"
	"go.uber.org/zap"
)

type AccountRepo interface {
	Get(ctx context.Context, userID, guildID int64) (*domain.Account, error)
	Create(ctx context.Context, userID, guildID, startBalance int64) (*domain.Account, error)
	ApplyCredit(ctx context.Context, userID, guildID, amount int64) (*domain.Account, error)
	ApplyDebit(ctx context.Context, userID, guildID, amount int64) (*domain.Account, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, trans *domain.Transaction) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, userID, guildID int64, limit int) ([]domain.Transaction, error)
	NetSum(ctx context.Context, userID, guildID int64) (int64, error)
}

type GuildRepo interface {
	GetConfig(ctx context.Context, guildID int64) (*domain.GuildConfig, error)
}

const defaultHistoryLimit = 10

// Service is the single gate through which balances change. Every mutation
// appends a matching transaction inside the same database transaction, and
// operations on one account are serialized by a keyed lock.
type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	guildRepo       GuildRepo
	txManager       pg.TXManager
	locks           *lockset.Set
	startBalance    int64
	taxRate         float64
	now             func() time.Time
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, guildRepo GuildRepo, txManager pg.TXManager, startBalance int64, taxRate float64) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		guildRepo:       guildRepo,
		txManager:       txManager,
		locks:           lockset.New(),
		startBalance:    startBalance,
		taxRate:         taxRate,
		now:             time.Now,
	}
}

// Receipt describes a completed transfer.
type Receipt struct {
	Debit  *domain.Transaction
	Credit *domain.Transaction
	Tax    int64
	Net    int64
}

// AuditReport compares the stored balance against the transaction log.
type AuditReport struct {
	Balance    int64
	NetSum     int64
	Consistent bool
}

func accountKey(userID, guildID int64) string {
	return fmt.Sprintf("%d:%d", guildID, userID)
}

func (s *Service) GetOrCreate(ctx context.Context, userID, guildID int64) (*domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, userID, guildID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	start := s.startBalance
	cfg, err := s.guildRepo.GetConfig(ctx, guildID)
	if err != nil {
		zap.L().Error("failed to get guild config", zap.Error(err))
		return nil, err
	}
	if cfg != nil {
		start = cfg.StartBalance
	}

	account, err = s.accountRepo.Create(ctx, userID, guildID, start)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetBalance(ctx context.Context, userID, guildID int64) (int64, error) {
	account, err := s.GetOrCreate(ctx, userID, guildID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func (s *Service) Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	unlock := s.locks.Lock(accountKey(userID, guildID))
	defer unlock()

	if _, err := s.GetOrCreate(ctx, userID, guildID); err != nil {
		return nil, err
	}

	trans := &domain.Transaction{
		UserID:    userID,
		GuildID:   guildID,
		Kind:      domain.TransactionCredit,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.accountRepo.ApplyCredit(ctx, userID, guildID, amount); err != nil {
			return err
		}
		_, err := s.transactionRepo.Append(ctx, trans)
		return err
	})
	if err != nil {
		zap.L().Error("credit failed", zap.Error(err))
		return nil, err
	}
	return trans, nil
}

func (s *Service) Debit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	unlock := s.locks.Lock(accountKey(userID, guildID))
	defer unlock()

	if _, err := s.GetOrCreate(ctx, userID, guildID); err != nil {
		return nil, err
	}

	trans := &domain.Transaction{
		UserID:    userID,
		GuildID:   guildID,
		Kind:      domain.TransactionDebit,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: s.now(),
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.ApplyDebit(ctx, userID, guildID, amount)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrInsufficientFunds
		}
		_, err = s.transactionRepo.Append(ctx, trans)
		return err
	})
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// Transfer debits the full amount from the sender and credits the net after
// tax to the receiver. The tax share is destroyed, acting as a currency
// sink. Both mutations commit or neither does.
func (s *Service) Transfer(ctx context.Context, guildID, fromID, toID, amount int64) (*Receipt, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if fromID == toID {
		return nil, domain.ErrInvalidTarget
	}

	rate := s.taxRate
	cfg, err := s.guildRepo.GetConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		rate = cfg.TaxRate
	}
	tax := int64(float64(amount) * rate)
	net := amount - tax

	unlock := s.locks.Lock(accountKey(fromID, guildID), accountKey(toID, guildID))
	defer unlock()

	if _, err := s.GetOrCreate(ctx, fromID, guildID); err != nil {
		return nil, err
	}
	if _, err := s.GetOrCreate(ctx, toID, guildID); err != nil {
		return nil, err
	}

	debit := &domain.Transaction{
		UserID:    fromID,
		GuildID:   guildID,
		Kind:      domain.TransactionDebit,
		Amount:    amount,
		Reason:    fmt.Sprintf("transfer to %d", toID),
		CreatedAt: s.now(),
	}
	credit := &domain.Transaction{
		UserID:    toID,
		GuildID:   guildID,
		Kind:      domain.TransactionCredit,
		Amount:    net,
		Reason:    fmt.Sprintf("transfer from %d", fromID),
		CreatedAt: s.now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.ApplyDebit(ctx, fromID, guildID, amount)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.ErrInsufficientFunds
		}
		if _, err := s.transactionRepo.Append(ctx, debit); err != nil {
			return err
		}
		if _, err := s.accountRepo.ApplyCredit(ctx, toID, guildID, net); err != nil {
			return err
		}
		_, err = s.transactionRepo.Append(ctx, credit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Receipt{Debit: debit, Credit: credit, Tax: tax, Net: net}, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID, guildID int64, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	transactions, err := s.transactionRepo.ListByAccount(ctx, userID, guildID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// Reconcile checks the core ledger invariant: the account balance equals the
// sum of its credits minus its debits, offset by the starting balance
// granted at account creation.
func (s *Service) Reconcile(ctx context.Context, userID, guildID int64) (*AuditReport, error) {
	unlock := s.locks.Lock(accountKey(userID, guildID))
	defer unlock()

	account, err := s.accountRepo.Get(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	sum, err := s.transactionRepo.NetSum(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}

	startBalance := account.Balance - sum
	return &AuditReport{
		Balance:    account.Balance,
		NetSum:     sum,
		Consistent: startBalance >= 0 && account.TotalEarned-account.TotalSpent == sum,
	}, nil
}
