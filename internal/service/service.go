package service

import (
	"github.com/centraldiv/botcore/internal/config"
	"github.com/centraldiv/botcore/internal/handlers/actions"
	"github.com/centraldiv/botcore/internal/handlers/auth"
	"github.com/centraldiv/botcore/internal/handlers/guild"
	"github.com/centraldiv/botcore/internal/handlers/invest"
	"github.com/centraldiv/botcore/internal/handlers/ledger"
	"github.com/centraldiv/botcore/internal/handlers/market"
	"github.com/centraldiv/botcore/internal/handlers/missions"

	pkgauth "github.com/centraldiv/botcore/pkg/auth"

	"github.com/centraldiv/botcore/internal/pg"
	"github.com/centraldiv/botcore/internal/repo"
	"github.com/centraldiv/botcore/internal/scheduler"
	authservice "github.com/centraldiv/botcore/internal/service/authservice"
	auctionservice "github.com/centraldiv/botcore/internal/service/auctionservice"
	guildservice "github.com/centraldiv/botcore/internal/service/guildservice"
	investservice "github.com/centraldiv/botcore/internal/service/investservice"
	ledgerservice "github.com/centraldiv/botcore/internal/service/ledgerservice"
	missionservice "github.com/centraldiv/botcore/internal/service/missionservice"
	salaryservice "github.com/centraldiv/botcore/internal/service/salaryservice"
)

type Services struct {
	AuthService    auth.Service
	LedgerService  ledger.Service
	InvestService  invest.Service
	AuctionService market.Service
	ActionService  actions.Service
	MissionService missions.Service
	GuildService   guild.Service
	SalaryService  guild.SalaryService
}

// New wires the domain services together and registers the deferred effect
// handlers with the scheduler so restored actions can resolve their kinds.
func New(cfg *config.Config, repo *repo.Repositories, sched *scheduler.Service, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, repo.TransactionRepo, repo.GuildRepo, txManager, cfg.StartBalance, cfg.TaxRate)
	investService := investservice.New(repo.InvestmentRepo, ledgerService, sched, txManager)
	auctionService := auctionservice.New(repo.AuctionRepo, ledgerService, sched, txManager)
	guildService := guildservice.New(repo.GuildRepo, sched, cfg.StartBalance, cfg.TaxRate)
	missionService := missionservice.New(repo.MissionRepo, ledgerService)
	salaryService := salaryservice.New(repo.SalaryRepo)
	authService := authservice.New(cfg.GatewaySecretHash, &pkgauth.HashService{}, &pkgauth.JWTService{})

	sched.Register(investservice.EffectKind, investservice.NewSettleEffect(investService))
	sched.Register(auctionservice.EffectKind, auctionservice.NewCloseEffect(auctionService))
	sched.Register(guildservice.FlagEffectKind, guildservice.NewRaidModeEffect(repo.GuildRepo))

	return &Services{
		AuthService:    authService,
		LedgerService:  ledgerService,
		InvestService:  investService,
		AuctionService: auctionService,
		ActionService:  sched,
		MissionService: missionService,
		GuildService:   guildService,
		SalaryService:  salaryService,
	}
}
