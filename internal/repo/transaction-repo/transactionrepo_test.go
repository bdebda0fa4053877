package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/centraldiv/botcore/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	t.Run("Append successfully", func(t *testing.T) {
		trans := &domain.Transaction{
			UserID:    100,
			GuildID:   1,
			Kind:      domain.TransactionCredit,
			Amount:    250,
			Reason:    "daily reward",
			CreatedAt: createdAt,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
			WithArgs(int64(100), int64(1), domain.TransactionCredit, int64(250), "daily reward", createdAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		result, err := repo.Append(context.Background(), trans)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), result.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		trans := &domain.Transaction{
			UserID:    100,
			GuildID:   1,
			Kind:      domain.TransactionDebit,
			Amount:    50,
			Reason:    "bid on auction #3",
			CreatedAt: createdAt,
		}
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
			WithArgs(int64(100), int64(1), domain.TransactionDebit, int64(50), "bid on auction #3", createdAt).
			WillReturnError(errors.New("database error"))

		result, err := repo.Append(context.Background(), trans)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListByAccount(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()

	columns := []string{"id", "user_id", "guild_id", "kind", "amount", "reason", "created_at"}

	t.Run("List newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(int64(2), int64(100), int64(1), domain.TransactionDebit, int64(50), "transfer to user 200", createdAt).
			AddRow(int64(1), int64(100), int64(1), domain.TransactionCredit, int64(1000), "initial balance", createdAt.Add(-time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
			WithArgs(int64(100), int64(1), 10).
			WillReturnRows(rows)

		result, err := repo.ListByAccount(context.Background(), 100, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, int64(2), result[0].ID)
		assert.Equal(t, domain.TransactionDebit, result[0].Kind)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty history", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
			WithArgs(int64(100), int64(1), 10).
			WillReturnRows(pgxmock.NewRows(columns))

		result, err := repo.ListByAccount(context.Background(), 100, 1, 10)
		assert.NoError(t, err)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
			WithArgs(int64(100), int64(1), 10).
			WillReturnError(errors.New("database error"))

		result, err := repo.ListByAccount(context.Background(), 100, 1, 10)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_NetSum(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Net of credits and debits", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
			WithArgs(int64(100), int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(750)))

		sum, err := repo.NetSum(context.Background(), 100, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(750), sum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM transactions")).
			WithArgs(int64(100), int64(1)).
			WillReturnError(errors.New("database error"))

		sum, err := repo.NetSum(context.Background(), 100, 1)
		assert.Error(t, err)
		assert.Zero(t, sum)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
