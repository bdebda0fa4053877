package salaryservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestConfigure(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		amount      int64
		interval    time.Duration
		prepareMock func(repo *MockRepo)
		wantErr     error
	}{
		{
			name:     "ConfigureSuccess",
			amount:   500,
			interval: 24 * time.Hour,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, salary *domain.Salary) error {
						assert.Equal(t, int64(1), salary.GuildID)
						assert.Equal(t, int64(10), salary.RoleID)
						assert.Equal(t, int64(500), salary.Amount)
						assert.Equal(t, 24*time.Hour, salary.Interval)
						assert.Equal(t, now, salary.LastPaid)
						return nil
					},
				)
			},
		},
		{
			name:        "NonPositiveAmount",
			amount:      0,
			interval:    24 * time.Hour,
			prepareMock: func(repo *MockRepo) {},
			wantErr:     domain.ErrInvalidAmount,
		},
		{
			name:        "NonPositiveInterval",
			amount:      500,
			interval:    0,
			prepareMock: func(repo *MockRepo) {},
			wantErr:     domain.ErrInvalidFormat,
		},
		{
			name:     "RepoError",
			amount:   500,
			interval: time.Hour,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			service.now = func() time.Time { return now }
			tt.prepareMock(repo)

			err := service.Configure(ctx, 1, 10, tt.amount, tt.interval)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
