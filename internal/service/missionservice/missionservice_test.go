package missionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	service := New(repo, ledger)
	defer ctrl.Finish()
	return service, repo, ledger
}

func TestDaily(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	existing := &domain.Mission{ID: 1, UserID: 100, GuildID: 1, Kind: "messages", Goal: "Send 50 messages", Target: 50, Day: day}

	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo)
		wantKind    string
		wantErr     bool
	}{
		{
			name: "ExistingMissionReturned",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(existing, nil)
			},
			wantKind: "messages",
		},
		{
			name: "NewMissionGenerated",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, mission *domain.Mission) (*domain.Mission, error) {
						assert.Equal(t, "voice", mission.Kind)
						assert.Equal(t, "Spend 60 minutes in voice", mission.Goal)
						assert.Equal(t, 60, mission.Target)
						assert.Equal(t, int64(300), mission.Reward)
						assert.Equal(t, day, mission.Day)
						mission.ID = 2
						return mission, nil
					},
				)
			},
			wantKind: "voice",
		},
		{
			name: "GetError",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "CreateError",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(nil, nil)
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			service.now = func() time.Time { return now }
			service.pick = func(n int) int { return 1 }
			tt.prepareMock(repo)

			mission, err := service.Daily(ctx, 100, 1)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantKind, mission.Kind)
		})
	}
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mission := func() *domain.Mission {
		return &domain.Mission{
			ID: 5, UserID: 100, GuildID: 1,
			Kind: "messages", Goal: "Send 50 messages",
			Target: 50, Progress: 40, Reward: 200, Day: day,
		}
	}

	tests := []struct {
		name         string
		kind         string
		count        int
		prepareMock  func(repo *MockRepo, ledger *MockLedger)
		wantProgress int
		wantClaimed  bool
		wantErr      error
	}{
		{
			name:  "ProgressBelowTarget",
			kind:  "messages",
			count: 5,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(mission(), nil)
				updated := mission()
				updated.Progress = 45
				repo.EXPECT().AddProgress(ctx, int64(5), 5).Return(updated, nil)
			},
			wantProgress: 45,
		},
		{
			name:  "TargetReachedPaysReward",
			kind:  "messages",
			count: 10,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(mission(), nil)
				updated := mission()
				updated.Progress = 50
				repo.EXPECT().AddProgress(ctx, int64(5), 10).Return(updated, nil)
				repo.EXPECT().Claim(ctx, int64(5)).Return(true, nil)
				ledger.EXPECT().Credit(ctx, int64(100), int64(1), int64(200), "mission reward: Send 50 messages").Return(&domain.Transaction{}, nil)
			},
			wantProgress: 50,
			wantClaimed:  true,
		},
		{
			name:  "ConcurrentClaimPaysOnce",
			kind:  "messages",
			count: 10,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(mission(), nil)
				updated := mission()
				updated.Progress = 50
				repo.EXPECT().AddProgress(ctx, int64(5), 10).Return(updated, nil)
				repo.EXPECT().Claim(ctx, int64(5)).Return(false, nil)
			},
			wantProgress: 50,
			wantClaimed:  false,
		},
		{
			name:  "KindMismatchIgnored",
			kind:  "voice",
			count: 5,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(mission(), nil)
			},
			wantProgress: 40,
		},
		{
			name:        "NoMissionToday",
			kind:        "messages",
			count:       5,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {
				repo.EXPECT().GetForDay(ctx, int64(100), int64(1), day).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:        "NonPositiveCount",
			kind:        "messages",
			count:       0,
			prepareMock: func(repo *MockRepo, ledger *MockLedger) {},
			wantErr:     domain.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, ledger := NewMock(t)
			service.now = func() time.Time { return now }
			tt.prepareMock(repo, ledger)

			got, err := service.Progress(ctx, 100, 1, tt.kind, tt.count)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantProgress, got.Progress)
			assert.Equal(t, tt.wantClaimed, got.Claimed)
		})
	}
}
