package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/centraldiv/botcore/internal/config"
	"github.com/centraldiv/botcore/internal/handlers"
	"github.com/centraldiv/botcore/internal/payroll"
	"github.com/centraldiv/botcore/internal/pg"
	"github.com/centraldiv/botcore/internal/repo"
	"github.com/centraldiv/botcore/internal/scheduler"
	"github.com/centraldiv/botcore/internal/service"
	"github.com/centraldiv/botcore/pkg/clients"
	"github.com/centraldiv/botcore/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sched *scheduler.Service
	pay   *payroll.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	client := clients.NewHTTPClient()
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.sched = scheduler.New(a.repo.ActionRepo)
	a.sched.Register(scheduler.WebhookEffectKind, scheduler.NewWebhookEffect(client))
	a.srv = service.New(cfg, a.repo, a.sched, txManager)
	a.api = handlers.New(a.srv)
	a.pay = payroll.New(cfg, a.repo.PayrollRepo, a.srv.LedgerService, client)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startBackground(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startBackground(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.sched.Start(ctx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.pay.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
