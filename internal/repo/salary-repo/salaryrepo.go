package salaryrepo

import (
	"context"
	"time"

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

func (r *Repository) Upsert(ctx context.Context, salary *domain.Salary) error {
	query := `
        INSERT INTO salaries (guild_id, role_id, amount, pay_interval, last_paid)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (guild_id, role_id)
        DO UPDATE SET amount = EXCLUDED.amount, pay_interval = EXCLUDED.pay_interval
    `
	_, err := r.db.Exec(ctx, query, salary.GuildID, salary.RoleID, salary.Amount, int64(salary.Interval.Seconds()), salary.LastPaid)
	if err != nil {
		zap.L().Error("can't save salary", zap.Error(err))
		return domain.StorageError(err)
	}
	return nil
}

func (r *Repository) FindDue(ctx context.Context, now time.Time) ([]domain.Salary, error) {
	query := `
        SELECT guild_id, role_id, amount, pay_interval, last_paid
        FROM salaries
        WHERE last_paid + make_interval(secs => pay_interval) <= $1
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get due salaries", zap.Error(err))
		return nil, domain.StorageError(err)
	}
	defer rows.Close()

	var salaries []domain.Salary
	for rows.Next() {
		var sal domain.Salary
		var intervalSec int64
		err := rows.Scan(&sal.GuildID, &sal.RoleID, &sal.Amount, &intervalSec, &sal.LastPaid)
		if err != nil {
			zap.L().Error("can't scan salary row", zap.Error(err))
			return nil, domain.StorageError(err)
		}
		sal.Interval = time.Duration(intervalSec) * time.Second
		salaries = append(salaries, sal)
	}
	return salaries, nil
}

func (r *Repository) UpdateLastPaid(ctx context.Context, guildID, roleID int64, paidAt time.Time) error {
	query := `
        UPDATE salaries
        SET last_paid = $1
        WHERE guild_id = $2 AND role_id = $3
    `
	if _, err := r.db.Exec(ctx, query, paidAt, guildID, roleID); err != nil {
		zap.L().Error("failed to update last paid", zap.Error(err))
		return domain.StorageError(err)
	}
	return nil
}
