package handlers

import (
	"net/http"

	_ "github.com/centraldiv/botcore/docs"
	actionshandlers "github.com/centraldiv/botcore/internal/handlers/actions"
	authhandlers "github.com/centraldiv/botcore/internal/handlers/auth"
	guildhandlers "github.com/centraldiv/botcore/internal/handlers/guild"
	investhandlers "github.com/centraldiv/botcore/internal/handlers/invest"
	ledgerhandlers "github.com/centraldiv/botcore/internal/handlers/ledger"
	markethandlers "github.com/centraldiv/botcore/internal/handlers/market"
	missionshandlers "github.com/centraldiv/botcore/internal/handlers/missions"
	"github.com/centraldiv/botcore/internal/service"
	"github.com/centraldiv/botcore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Audit(w http.ResponseWriter, r *http.Request)
}

type InvestHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type MarketHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Bid(w http.ResponseWriter, r *http.Request)
}

type ActionsHandler interface {
	Schedule(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type MissionsHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type GuildHandler interface {
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	EnableRaidMode(w http.ResponseWriter, r *http.Request)
	ConfigureSalary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	LedgerHandler   LedgerHandler
	InvestHandler   InvestHandler
	MarketHandler   MarketHandler
	ActionsHandler  ActionsHandler
	MissionsHandler MissionsHandler
	GuildHandler    GuildHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		InvestHandler:   investhandlers.New(s.InvestService),
		MarketHandler:   markethandlers.New(s.AuctionService),
		ActionsHandler:  actionshandlers.New(s.ActionService),
		MissionsHandler: missionshandlers.New(s.MissionService),
		GuildHandler:    guildhandlers.New(s.GuildService, s.SalaryService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/actions", func(r chi.Router) {
				r.Post("/", h.ActionsHandler.Schedule)
				r.Delete("/{actionID}", h.ActionsHandler.Cancel)
			})
			r.Route("/guilds/{guildID}", func(r chi.Router) {
				r.Get("/config", h.GuildHandler.GetConfig)
				r.Put("/config", h.GuildHandler.UpdateConfig)
				r.Post("/raidmode", h.GuildHandler.EnableRaidMode)
				r.Post("/salaries", h.GuildHandler.ConfigureSalary)
				r.Post("/transfer", h.LedgerHandler.Transfer)

				r.Route("/auctions", func(r chi.Router) {
					r.Post("/", h.MarketHandler.Open)
					r.Get("/{auctionID}", h.MarketHandler.Get)
					r.Post("/{auctionID}/bids", h.MarketHandler.Bid)
				})
				r.Route("/users/{userID}", func(r chi.Router) {
					r.Get("/balance", h.LedgerHandler.GetBalance)
					r.Post("/credit", h.LedgerHandler.Credit)
					r.Post("/debit", h.LedgerHandler.Debit)
					r.Get("/transactions", h.LedgerHandler.GetTransactions)
					r.Get("/audit", h.LedgerHandler.Audit)
					r.Route("/investments", func(r chi.Router) {
						r.Post("/", h.InvestHandler.Open)
						r.Get("/", h.InvestHandler.List)
					})
					r.Route("/missions", func(r chi.Router) {
						r.Get("/daily", h.MissionsHandler.Daily)
						r.Post("/progress", h.MissionsHandler.Progress)
					})
				})
			})
		})
	})

	return r
}
