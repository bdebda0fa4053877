package salaryservice

import (
	"context"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Upsert(ctx context.Context, salary *domain.Salary) error
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Configure registers or replaces a recurring payment for a role. The first
// payout lands one interval from now.
func (s *Service) Configure(ctx context.Context, guildID, roleID, amount int64, interval time.Duration) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if interval <= 0 {
		return domain.ErrInvalidFormat
	}

	err := s.repo.Upsert(ctx, &domain.Salary{
		GuildID:  guildID,
		RoleID:   roleID,
		Amount:   amount,
		Interval: interval,
		LastPaid: s.now(),
	})
	if err != nil {
		zap.L().Error("failed to configure salary", zap.Error(err))
		return err
	}
	return nil
}
