package missionservice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetForDay(ctx context.Context, userID, guildID int64, day time.Time) (*domain.Mission, error)
	Create(ctx context.Context, mission *domain.Mission) (*domain.Mission, error)
	AddProgress(ctx context.Context, missionID int64, count int) (*domain.Mission, error)
	Claim(ctx context.Context, missionID int64) (bool, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID, guildID, amount int64, reason string) (*domain.Transaction, error)
}

type template struct {
	kind   string
	goal   string
	target int
	reward int64
}

var templates = []template{
	{kind: "messages", goal: "Send 50 messages", target: 50, reward: 200},
	{kind: "voice", goal: "Spend 60 minutes in voice", target: 60, reward: 300},
	{kind: "reactions", goal: "React to 20 messages", target: 20, reward: 150},
	{kind: "commands", goal: "Use 10 commands", target: 10, reward: 250},
}

// Service hands out one mission per account per day and pays the reward
// through the ledger once the target is reached.
type Service struct {
	repo   Repo
	ledger Ledger
	now    func() time.Time
	pick   func(n int) int
}

func New(repo Repo, ledger Ledger) *Service {
	return &Service{
		repo:   repo,
		ledger: ledger,
		now:    time.Now,
		pick:   rand.Intn,
	}
}

func (s *Service) day() time.Time {
	year, month, day := s.now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *Service) Daily(ctx context.Context, userID, guildID int64) (*domain.Mission, error) {
	day := s.day()
	mission, err := s.repo.GetForDay(ctx, userID, guildID, day)
	if err != nil {
		return nil, err
	}
	if mission != nil {
		return mission, nil
	}

	tmpl := templates[s.pick(len(templates))]
	mission, err = s.repo.Create(ctx, &domain.Mission{
		UserID:  userID,
		GuildID: guildID,
		Kind:    tmpl.kind,
		Goal:    tmpl.goal,
		Target:  tmpl.target,
		Reward:  tmpl.reward,
		Day:     day,
	})
	if err != nil {
		zap.L().Error("failed to create mission", zap.Error(err))
		return nil, err
	}
	return mission, nil
}

// Progress records activity against today's mission and pays out the reward
// the first time the target is reached. The claim is a conditional update,
// so concurrent progress reports pay at most once.
func (s *Service) Progress(ctx context.Context, userID, guildID int64, kind string, count int) (*domain.Mission, error) {
	if count <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	mission, err := s.repo.GetForDay(ctx, userID, guildID, s.day())
	if err != nil {
		return nil, err
	}
	if mission == nil {
		return nil, domain.ErrNotFound
	}
	if mission.Kind != kind {
		return mission, nil
	}

	mission, err = s.repo.AddProgress(ctx, mission.ID, count)
	if err != nil {
		return nil, err
	}

	if mission.Progress >= mission.Target && !mission.Claimed {
		won, err := s.repo.Claim(ctx, mission.ID)
		if err != nil {
			return nil, err
		}
		if won {
			if _, err := s.ledger.Credit(ctx, userID, guildID, mission.Reward, fmt.Sprintf("mission reward: %s", mission.Goal)); err != nil {
				return nil, err
			}
			mission.Claimed = true
		}
	}
	return mission, nil
}
