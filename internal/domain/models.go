package domain

import "time"

type TransactionKind string

const (
	TransactionCredit TransactionKind = "credit"
	TransactionDebit  TransactionKind = "debit"
)

type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

type InvestmentStatus string

const (
	InvestmentActive  InvestmentStatus = "active"
	InvestmentSettled InvestmentStatus = "settled"
)

type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionClosed AuctionStatus = "closed"
)

type ActionStatus string

const (
	ActionPending   ActionStatus = "pending"
	ActionFired     ActionStatus = "fired"
	ActionCancelled ActionStatus = "cancelled"
)

// Account is a user's balance record scoped to one guild. Balance never
// goes below zero; all mutation happens through the ledger service.
type Account struct {
	UserID      int64     `db:"user_id"`
	GuildID     int64     `db:"guild_id"`
	Balance     int64     `db:"balance"`
	TotalEarned int64     `db:"total_earned"`
	TotalSpent  int64     `db:"total_spent"`
	CreatedAt   time.Time `db:"created_at"`
}

// Transaction is an immutable ledger record. For any account the sum of
// credits minus debits equals its current balance.
type Transaction struct {
	ID        int64           `db:"id"`
	UserID    int64           `db:"user_id"`
	GuildID   int64           `db:"guild_id"`
	Kind      TransactionKind `db:"kind"`
	Amount    int64           `db:"amount"`
	Reason    string          `db:"reason"`
	CreatedAt time.Time       `db:"created_at"`
}

// Investment holds a debited principal until maturity. The return rate is
// fixed at creation, not at settlement.
type Investment struct {
	ID         int64            `db:"id"`
	UserID     int64            `db:"user_id"`
	GuildID    int64            `db:"guild_id"`
	Principal  int64            `db:"principal"`
	Risk       RiskTier         `db:"risk"`
	ReturnRate float64          `db:"return_rate"`
	MaturesAt  time.Time        `db:"matures_at"`
	Status     InvestmentStatus `db:"status"`
	CreatedAt  time.Time        `db:"created_at"`
}

type Auction struct {
	ID            int64         `db:"id"`
	GuildID       int64         `db:"guild_id"`
	SellerID      int64         `db:"seller_id"`
	Item          string        `db:"item"`
	StartPrice    int64         `db:"start_price"`
	CurrentBid    int64         `db:"current_bid"`
	HighestBidder *int64        `db:"highest_bidder"`
	EndsAt        time.Time     `db:"ends_at"`
	Status        AuctionStatus `db:"status"`
}

// DeferredAction is a persisted "undo X at time T unless cancelled" record.
// The row is written before the in-memory timer is armed so pending
// reversals survive a restart.
type DeferredAction struct {
	ID       int64        `db:"id"`
	Subject  string       `db:"subject"`
	Kind     string       `db:"kind"`
	Payload  []byte       `db:"payload"`
	FireAt   time.Time    `db:"fire_at"`
	Status   ActionStatus `db:"status"`
	Attempts int          `db:"attempts"`
}

type GuildConfig struct {
	GuildID        int64   `db:"guild_id"`
	CurrencyName   string  `db:"currency_name"`
	CurrencySymbol string  `db:"currency_symbol"`
	StartBalance   int64   `db:"start_balance"`
	TaxRate        float64 `db:"tax_rate"`
	RaidMode       bool    `db:"raid_mode"`
}

type Salary struct {
	GuildID  int64         `db:"guild_id"`
	RoleID   int64         `db:"role_id"`
	Amount   int64         `db:"amount"`
	Interval time.Duration `db:"pay_interval"`
	LastPaid time.Time     `db:"last_paid"`
}

type Mission struct {
	ID       int64     `db:"id"`
	UserID   int64     `db:"user_id"`
	GuildID  int64     `db:"guild_id"`
	Kind     string    `db:"kind"`
	Goal     string    `db:"goal"`
	Target   int       `db:"target"`
	Progress int       `db:"progress"`
	Reward   int64     `db:"reward"`
	Claimed  bool      `db:"claimed"`
	Day      time.Time `db:"day"`
}
