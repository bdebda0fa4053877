package repo

import (
	"github.com/centraldiv/botcore/internal/payroll"
	"github.com/centraldiv/botcore/internal/pg"
	accountrepo "github.com/centraldiv/botcore/internal/repo/account-repo"
	actionrepo "github.com/centraldiv/botcore/internal/repo/action-repo"
	auctionrepo "github.com/centraldiv/botcore/internal/repo/auction-repo"
	guildrepo "github.com/centraldiv/botcore/internal/repo/guild-repo"
	investmentrepo "github.com/centraldiv/botcore/internal/repo/investment-repo"
	missionrepo "github.com/centraldiv/botcore/internal/repo/mission-repo"
	salaryrepo "github.com/centraldiv/botcore/internal/repo/salary-repo"
	transactionrepo "github.com/centraldiv/botcore/internal/repo/transaction-repo"
	"github.com/centraldiv/botcore/internal/scheduler"
	"github.com/centraldiv/botcore/internal/service/auctionservice"
	"github.com/centraldiv/botcore/internal/service/guildservice"
	"github.com/centraldiv/botcore/internal/service/investservice"
	"github.com/centraldiv/botcore/internal/service/ledgerservice"
	"github.com/centraldiv/botcore/internal/service/missionservice"
	"github.com/centraldiv/botcore/internal/service/salaryservice"
)

type Repositories struct {
	AccountRepo     ledgerservice.AccountRepo
	TransactionRepo ledgerservice.TransactionRepo
	GuildRepo       guildservice.Repo
	InvestmentRepo  investservice.Repo
	AuctionRepo     auctionservice.Repo
	ActionRepo      scheduler.Repo
	SalaryRepo      salaryservice.Repo
	PayrollRepo     payroll.SalaryRepo
	MissionRepo     missionservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	guildRepo := guildrepo.New(conn)
	investmentRepo := investmentrepo.New(conn)
	auctionRepo := auctionrepo.New(conn)
	actionRepo := actionrepo.New(conn)
	salaryRepo := salaryrepo.New(conn)
	missionRepo := missionrepo.New(conn)

	return &Repositories{
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		GuildRepo:       guildRepo,
		InvestmentRepo:  investmentRepo,
		AuctionRepo:     auctionRepo,
		ActionRepo:      actionRepo,
		SalaryRepo:      salaryRepo,
		PayrollRepo:     salaryRepo,
		MissionRepo:     missionRepo,
	}
}
