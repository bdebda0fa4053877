package actionrepo

import (
	"context"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/centraldiv/botcore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, action *domain.DeferredAction) (*domain.DeferredAction, error) {
	query := `
        INSERT INTO deferred_actions (subject, kind, payload, fire_at, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, action.Subject, action.Kind, action.Payload, action.FireAt, action.Status).Scan(&action.ID)
	if err != nil {
		zap.L().Error("can't save deferred action", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	return action, nil
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.DeferredAction, error) {
	query := `
        SELECT id, subject, kind, payload, fire_at, status, attempts
        FROM deferred_actions
        WHERE status = 'pending'
        ORDER BY fire_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get pending actions", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var actions []domain.DeferredAction
	for rows.Next() {
		var action domain.DeferredAction
		err := rows.Scan(&action.ID, &action.Subject, &action.Kind, &action.Payload, &action.FireAt, &action.Status, &action.Attempts)
		if err != nil {
			zap.L().Error("can't scan deferred action row", zap.Error(err))
			return nil, domain.StorageError(err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Transition moves an action out of pending. The conditional update is the
// arbiter between a firing timer and a concurrent cancel: exactly one caller
// sees won == true.
func (r *Repository) Transition(ctx context.Context, actionID int64, to domain.ActionStatus) (bool, error) {
	query := `
        UPDATE deferred_actions
        SET status = $1
        WHERE id = $2 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, to, actionID)
	if err != nil {
		zap.L().Error("failed to transition deferred action", zap.Error(err))
		return false, domain.StorageError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Exists(ctx context.Context, actionID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM deferred_actions WHERE id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, actionID).Scan(&exists); err != nil {
		zap.L().Error("failed to check deferred action", zap.Error(err))
		return false, domain.StorageError(err)
	}
	return exists, nil
}

func (r *Repository) RecordAttempts(ctx context.Context, actionID int64, attempts int) error {
	query := `
        UPDATE deferred_actions
        SET attempts = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, attempts, actionID); err != nil {
		zap.L().Error("failed to record undo attempts", zap.Error(err))
		return domain.StorageError(err)
	}
	return nil
}
