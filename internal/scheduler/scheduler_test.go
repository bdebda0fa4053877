package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// syncPool runs tasks inline so tests observe undo effects deterministically.
type syncPool struct{}

func (syncPool) AddTask(_ context.Context, task Task) error { return task() }
func (syncPool) Close()                                     {}

func NewMock(t *testing.T) (*Service, *MockRepo, *MockEffectHandler) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	handler := NewMockEffectHandler(ctrl)

	s := New(repo)
	s.workerPool = syncPool{}
	s.Register("test_effect", handler)
	return s, repo, handler
}

func TestService_Schedule(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		kind        string
		payload     []byte
		prepareMock func(repo *MockRepo, handler *MockEffectHandler)
		wantID      int64
		wantErr     bool
	}{
		{
			name:    "ScheduleSuccess",
			kind:    "test_effect",
			payload: []byte(`{"flag":true}`),
			prepareMock: func(repo *MockRepo, handler *MockEffectHandler) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, action *domain.DeferredAction) (*domain.DeferredAction, error) {
						assert.Equal(t, "guild:1", action.Subject)
						assert.Equal(t, domain.ActionPending, action.Status)
						assert.Equal(t, now.Add(time.Hour), action.FireAt)
						action.ID = 7
						return action, nil
					},
				)
				handler.EXPECT().Apply(ctx, "guild:1", []byte(`{"flag":true}`)).Return(nil)
			},
			wantID: 7,
		},
		{
			name:    "EmptyPayloadNormalized",
			kind:    "test_effect",
			payload: nil,
			prepareMock: func(repo *MockRepo, handler *MockEffectHandler) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, action *domain.DeferredAction) (*domain.DeferredAction, error) {
						assert.Equal(t, []byte("{}"), action.Payload)
						action.ID = 8
						return action, nil
					},
				)
				handler.EXPECT().Apply(ctx, "guild:1", []byte("{}")).Return(nil)
			},
			wantID: 8,
		},
		{
			name:        "UnknownKind",
			kind:        "unregistered",
			prepareMock: func(repo *MockRepo, handler *MockEffectHandler) {},
			wantErr:     true,
		},
		{
			name: "CreateError",
			kind: "test_effect",
			prepareMock: func(repo *MockRepo, handler *MockEffectHandler) {
				repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name:    "ApplyFailureCancelsAction",
			kind:    "test_effect",
			payload: []byte("{}"),
			prepareMock: func(repo *MockRepo, handler *MockEffectHandler) {
				repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, action *domain.DeferredAction) (*domain.DeferredAction, error) {
						action.ID = 9
						return action, nil
					},
				)
				handler.EXPECT().Apply(ctx, "guild:1", []byte("{}")).Return(errors.New("apply boom"))
				repo.EXPECT().Transition(ctx, int64(9), domain.ActionCancelled).Return(true, nil)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, handler := NewMock(t)
			s.now = func() time.Time { return now }
			tt.prepareMock(repo, handler)

			id, err := s.Schedule(ctx, "guild:1", tt.kind, tt.payload, time.Hour)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			_, armed := s.timers.Load(id)
			assert.True(t, armed)
			s.disarm(id)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		actionID    int64
		prepareMock func(repo *MockRepo)
		wantErr     error
	}{
		{
			name:     "CancelWinsRace",
			actionID: 1,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Transition(ctx, int64(1), domain.ActionCancelled).Return(true, nil)
			},
		},
		{
			name:     "AlreadyFiredIsNoOp",
			actionID: 2,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Transition(ctx, int64(2), domain.ActionCancelled).Return(false, nil)
				repo.EXPECT().Exists(ctx, int64(2)).Return(true, nil)
			},
		},
		{
			name:     "UnknownToken",
			actionID: 3,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Transition(ctx, int64(3), domain.ActionCancelled).Return(false, nil)
				repo.EXPECT().Exists(ctx, int64(3)).Return(false, nil)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:     "TransitionError",
			actionID: 4,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().Transition(ctx, int64(4), domain.ActionCancelled).Return(false, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			timer := time.AfterFunc(time.Hour, func() {})
			s.timers.Store(tt.actionID, timer)

			err := s.Cancel(ctx, tt.actionID)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			if tt.name == "CancelWinsRace" {
				_, armed := s.timers.Load(tt.actionID)
				assert.False(t, armed)
			}
			s.disarm(tt.actionID)
		})
	}
}

func TestService_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	overdue := domain.DeferredAction{
		ID:      10,
		Subject: "guild:1",
		Kind:    "test_effect",
		Payload: []byte("{}"),
		FireAt:  now.Add(-time.Minute),
		Status:  domain.ActionPending,
	}
	future := domain.DeferredAction{
		ID:      11,
		Subject: "guild:1",
		Kind:    "test_effect",
		Payload: []byte("{}"),
		FireAt:  now.Add(time.Hour),
		Status:  domain.ActionPending,
	}

	t.Run("OverdueActionFires", func(t *testing.T) {
		s, repo, handler := NewMock(t)
		s.now = func() time.Time { return now }

		repo.EXPECT().FindPending(ctx).Return([]domain.DeferredAction{overdue}, nil)
		repo.EXPECT().Transition(ctx, int64(10), domain.ActionFired).Return(true, nil)
		handler.EXPECT().Undo(gomock.Any(), "guild:1", []byte("{}")).Return(nil)
		repo.EXPECT().RecordAttempts(gomock.Any(), int64(10), 1).Return(nil)

		s.sweep(ctx)
	})

	t.Run("FutureActionReArmed", func(t *testing.T) {
		s, repo, _ := NewMock(t)
		s.now = func() time.Time { return now }

		repo.EXPECT().FindPending(ctx).Return([]domain.DeferredAction{future}, nil)

		s.sweep(ctx)
		_, armed := s.timers.Load(future.ID)
		assert.True(t, armed)
		s.disarm(future.ID)
	})

	t.Run("ArmedActionSkipped", func(t *testing.T) {
		s, repo, _ := NewMock(t)
		s.now = func() time.Time { return now }

		timer := time.AfterFunc(time.Hour, func() {})
		s.timers.Store(overdue.ID, timer)
		defer s.disarm(overdue.ID)

		repo.EXPECT().FindPending(ctx).Return([]domain.DeferredAction{overdue}, nil)

		s.sweep(ctx)
	})

	t.Run("LostFireRaceSkipsUndo", func(t *testing.T) {
		s, repo, _ := NewMock(t)
		s.now = func() time.Time { return now }

		repo.EXPECT().FindPending(ctx).Return([]domain.DeferredAction{overdue}, nil)
		repo.EXPECT().Transition(ctx, int64(10), domain.ActionFired).Return(false, nil)

		s.sweep(ctx)
	})

	t.Run("FindPendingError", func(t *testing.T) {
		s, repo, _ := NewMock(t)
		s.now = func() time.Time { return now }

		repo.EXPECT().FindPending(ctx).Return(nil, errors.New("db error"))

		s.sweep(ctx)
	})
}

func TestService_UndoRetry(t *testing.T) {
	action := domain.DeferredAction{
		ID:      20,
		Subject: "guild:1",
		Kind:    "test_effect",
		Payload: []byte("{}"),
	}

	t.Run("RetrySucceeds", func(t *testing.T) {
		s, repo, handler := NewMock(t)

		gomock.InOrder(
			handler.EXPECT().Undo(gomock.Any(), "guild:1", []byte("{}")).Return(errors.New("transient")),
			handler.EXPECT().Undo(gomock.Any(), "guild:1", []byte("{}")).Return(nil),
		)
		repo.EXPECT().RecordAttempts(gomock.Any(), int64(20), 2).Return(nil)

		err := s.undo(action)
		assert.NoError(t, err)
	})

	t.Run("PermanentFailureKeepsActionFired", func(t *testing.T) {
		s, repo, handler := NewMock(t)

		handler.EXPECT().Undo(gomock.Any(), "guild:1", []byte("{}")).Return(errors.New("broken")).Times(maxUndoRetries)
		repo.EXPECT().RecordAttempts(gomock.Any(), int64(20), maxUndoRetries).Return(nil)

		err := s.undo(action)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed after 3 attempts")
	})

	t.Run("NoHandlerForKind", func(t *testing.T) {
		s, _, _ := NewMock(t)

		err := s.undo(domain.DeferredAction{ID: 21, Kind: "unregistered"})
		assert.Error(t, err)
	})
}
