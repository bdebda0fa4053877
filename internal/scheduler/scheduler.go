package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxUndoRetries = 3
	retryInterval  = time.Second * 1
	sweepInterval  = time.Second * 30
)

type Repo interface {
	Create(ctx context.Context, action *domain.DeferredAction) (*domain.DeferredAction, error)
	FindPending(ctx context.Context) ([]domain.DeferredAction, error)
	Transition(ctx context.Context, actionID int64, to domain.ActionStatus) (bool, error)
	Exists(ctx context.Context, actionID int64) (bool, error)
	RecordAttempts(ctx context.Context, actionID int64, attempts int) error
}

// EffectHandler is a reversible effect keyed by kind. Payloads are opaque
// JSON so actions can be re-armed from storage after a restart. Undo must
// tolerate the external state having been reverted manually already.
type EffectHandler interface {
	Apply(ctx context.Context, subject string, payload []byte) error
	Undo(ctx context.Context, subject string, payload []byte) error
}

// Service applies an effect now and guarantees its inverse runs exactly once
// after a delay, unless cancelled first. Each action is persisted before its
// timer is armed, and the pending->fired/cancelled transition is a storage
// compare-and-swap, so firing and cancellation resolve to a single winner
// even across restarts.
type Service struct {
	repo       Repo
	workerPool WorkerPoolI

	mu       sync.RWMutex
	handlers map[string]EffectHandler

	timers sync.Map // action ID -> *time.Timer

	now func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(10),
		handlers:   make(map[string]EffectHandler),
		now:        time.Now,
	}
}

func (s *Service) Register(kind string, handler EffectHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[kind] = handler
}

func (s *Service) handler(kind string) (EffectHandler, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	handler, ok := s.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("no effect handler registered for kind %q", kind)
	}
	return handler, nil
}

// Schedule persists the action, runs its apply effect synchronously and arms
// the undo timer. The returned ID doubles as the cancellation token.
func (s *Service) Schedule(ctx context.Context, subject, kind string, payload []byte, delay time.Duration) (int64, error) {
	handler, err := s.handler(kind)
	if err != nil {
		return 0, err
	}
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	action := &domain.DeferredAction{
		Subject: subject,
		Kind:    kind,
		Payload: payload,
		FireAt:  s.now().Add(delay),
		Status:  domain.ActionPending,
	}
	if _, err := s.repo.Create(ctx, action); err != nil {
		return 0, err
	}

	if err := handler.Apply(ctx, subject, payload); err != nil {
		if _, trErr := s.repo.Transition(ctx, action.ID, domain.ActionCancelled); trErr != nil {
			zap.L().Error("failed to cancel action after apply failure", zap.Int64("actionID", action.ID), zap.Error(trErr))
		}
		return 0, fmt.Errorf("apply effect failed: %w", err)
	}

	s.arm(*action)
	return action.ID, nil
}

// Cancel stops a pending action so its undo never runs. Cancelling an action
// that already fired or was already cancelled is a no-op; an unknown token
// is ErrNotFound.
func (s *Service) Cancel(ctx context.Context, actionID int64) error {
	won, err := s.repo.Transition(ctx, actionID, domain.ActionCancelled)
	if err != nil {
		return err
	}
	if won {
		s.disarm(actionID)
		zap.L().Info("deferred action cancelled", zap.Int64("actionID", actionID))
		return nil
	}

	exists, err := s.repo.Exists(ctx, actionID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Deferred action scheduler started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping scheduler")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep re-arms every pending action found in storage: overdue ones fire
// immediately, future ones get a timer. On startup this is the restore pass
// required for reversals to survive a restart; later passes catch anything a
// lost timer left behind. Firing is CAS-guarded, so overlap is harmless.
func (s *Service) sweep(ctx context.Context) {
	actions, err := s.repo.FindPending(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch pending actions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, action := range actions {
		action := action

		if _, armed := s.timers.Load(action.ID); armed {
			continue
		}

		delay := action.FireAt.Sub(s.now())
		if delay > 0 {
			s.arm(action)
			continue
		}
		g.Go(func() error {
			return s.fire(ctx, action)
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("Error firing due actions", zap.Error(err))
	}
}

func (s *Service) arm(action domain.DeferredAction) {
	delay := action.FireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}
	timer := time.AfterFunc(delay, func() {
		if err := s.fire(context.Background(), action); err != nil {
			zap.L().Error("Deferred action firing failed", zap.Int64("actionID", action.ID), zap.Error(err))
		}
	})
	if _, loaded := s.timers.LoadOrStore(action.ID, timer); loaded {
		timer.Stop()
	}
}

func (s *Service) disarm(actionID int64) {
	if timer, ok := s.timers.LoadAndDelete(actionID); ok {
		timer.(*time.Timer).Stop()
	}
}

// fire races the storage transition against any concurrent cancel; only the
// winner runs the undo effect. The action stays fired even when the undo
// ultimately fails, so a permanently broken effect cannot cause a retry
// storm.
func (s *Service) fire(ctx context.Context, action domain.DeferredAction) error {
	defer s.timers.Delete(action.ID)

	won, err := s.repo.Transition(ctx, action.ID, domain.ActionFired)
	if err != nil {
		return fmt.Errorf("failed to mark action %d fired: %w", action.ID, err)
	}
	if !won {
		return nil
	}

	return s.workerPool.AddTask(ctx, func() error {
		return s.undo(action)
	})
}

func (s *Service) undo(action domain.DeferredAction) error {
	handler, err := s.handler(action.Kind)
	if err != nil {
		zap.L().Error("Undo effect has no handler", zap.Int64("actionID", action.ID), zap.String("kind", action.Kind))
		return err
	}

	attempts := 0
	for attempt := 1; attempt <= maxUndoRetries; attempt++ {
		attempts = attempt
		err = handler.Undo(context.Background(), action.Subject, action.Payload)
		if err == nil {
			break
		}
		zap.L().Warn("Undo effect failed, retrying",
			zap.Int64("actionID", action.ID),
			zap.String("kind", action.Kind),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxUndoRetries {
			time.Sleep(retryInterval * time.Duration(attempt))
		}
	}

	if recErr := s.repo.RecordAttempts(context.Background(), action.ID, attempts); recErr != nil {
		zap.L().Error("Failed to record undo attempts", zap.Int64("actionID", action.ID), zap.Error(recErr))
	}

	if err != nil {
		zap.L().Error("Undo effect failed permanently",
			zap.Int64("actionID", action.ID),
			zap.String("kind", action.Kind),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		return fmt.Errorf("undo effect for action %d failed after %d attempts: %w", action.ID, attempts, err)
	}

	zap.L().Info("Deferred action fired", zap.Int64("actionID", action.ID), zap.String("kind", action.Kind))
	return nil
}
