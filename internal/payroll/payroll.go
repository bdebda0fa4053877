package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/centraldiv/botcore/internal/config"
	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/scheduler"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/centraldiv/botcore/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingSalaries sync.Map

// Response is the gateway's member listing for a guild role.
type Response struct {
	GuildID int64   `json:"guild_id"`
	RoleID  int64   `json:"role_id"`
	Members []int64 `json:"members"`
}

type SalaryRepo interface {
	FindDue(ctx context.Context, now time.Time) ([]domain.Salary, error)
	UpdateLastPaid(ctx context.Context, guildID, roleID int64, paidAt time.Time) error
}

type Ledger interface {
	Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
}

type Service struct {
	url            string
	salaryRepo     SalaryRepo
	ledger         Ledger
	client         clients.HTTPClientI
	workerPool     scheduler.WorkerPoolI
	updateInterval time.Duration
	now            func() time.Time
}

func New(cfg *config.Config, salaryRepo SalaryRepo, ledger Ledger, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.GatewayAddress,
		salaryRepo:     salaryRepo,
		ledger:         ledger,
		client:         client,
		workerPool:     scheduler.NewWorkerPool(10),
		updateInterval: time.Minute * 1,
		now:            time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payroll service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payroll")
			return
		case <-ticker.C:
			s.processSalaries(ctx)
		}
	}
}

func (s *Service) processSalaries(ctx context.Context) {
	due, err := s.salaryRepo.FindDue(ctx, s.now())
	if err != nil {
		zap.L().Error("Failed to fetch due salaries", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, salary := range due {
		salary := salary
		key := salaryKey(salary)

		if _, loaded := processingSalaries.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingSalaries.Delete(key)
				return s.handleSalary(ctx, salary)
			})
			if err != nil {
				processingSalaries.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing salaries", zap.Error(err))
	}
}

func (s *Service) handleSalary(ctx context.Context, salary domain.Salary) error {
	url := fmt.Sprintf("%s/api/guilds/%d/roles/%d/members", s.url, salary.GuildID, salary.RoleID)
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to resolve members for role %d after %d retries: %w", salary.RoleID, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				s.waitRateLimit(salary, respHeaders, attempt)
				continue
			case http.StatusNotFound:
				zap.L().Warn("Role unknown to gateway, skipping payout",
					zap.Int64("guildID", salary.GuildID),
					zap.Int64("roleID", salary.RoleID),
				)
				return nil
			case http.StatusOK:
				return s.payout(ctx, salary, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.Int64("roleID", salary.RoleID))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) payout(ctx context.Context, salary domain.Salary, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.RoleID != salary.RoleID {
		return fmt.Errorf("role mismatch: expected %d, got %d", salary.RoleID, response.RoleID)
	}

	reason := fmt.Sprintf("salary: role %d", salary.RoleID)
	for _, memberID := range response.Members {
		if _, err := s.ledger.Credit(ctx, memberID, salary.GuildID, salary.Amount, reason); err != nil {
			return fmt.Errorf("failed to pay member %d: %w", memberID, err)
		}
	}

	if err := s.salaryRepo.UpdateLastPaid(ctx, salary.GuildID, salary.RoleID, s.now()); err != nil {
		return fmt.Errorf("failed to record payout: %w", err)
	}

	zap.L().Info("Salary paid",
		zap.Int64("guildID", salary.GuildID),
		zap.Int64("roleID", salary.RoleID),
		zap.Int("members", len(response.Members)),
		zap.Int64("amount", salary.Amount),
	)
	return nil
}

func (s *Service) waitRateLimit(salary domain.Salary, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.Int64("roleID", salary.RoleID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}

func salaryKey(s domain.Salary) string {
	return fmt.Sprintf("%d:%d", s.GuildID, s.RoleID)
}
