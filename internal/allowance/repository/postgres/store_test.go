package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kolhesatish/content-app/internal/allowance"
	repo "github.com/kolhesatish/content-app/internal/allowance/repository/postgres"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"credits", "last_refill_date"}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestRead(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	s := repo.NewAllowanceStore(mock)

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT credits, last_refill_date").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(3, date("2024-01-01")))

		st, err := s.Read(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, 3, st.Credits)
		assert.True(t, st.LastRefillDate.Equal(date("2024-01-01")))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT credits, last_refill_date").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)

		_, err := s.Read(ctx, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	s := repo.NewAllowanceStore(mock)
	st := allowance.State{Credits: 4, LastRefillDate: date("2024-01-02")}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123", st.Credits, st.LastRefillDate).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, s.Commit(ctx, "user-123", st))
	})

	t.Run("no such row", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("ghost", st.Credits, st.LastRefillDate).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, s.Commit(ctx, "ghost", st), apperrors.ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123", st.Credits, st.LastRefillDate).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, s.Commit(ctx, "user-123", st))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ctx := context.Background()
	s := repo.NewAllowanceStore(mock)
	policy := allowance.DefaultPolicy()
	today := date("2024-01-02")

	t.Run("locks, decides and writes in one transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("(?s)SELECT credits, last_refill_date.*FOR UPDATE").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(0, date("2024-01-01")))
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123", 1, today).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		var granted bool
		st, err := s.Apply(ctx, "user-123", func(cur allowance.State) allowance.State {
			var next allowance.State
			granted, next = policy.TryConsume(cur, today, 1)
			return next
		})
		require.NoError(t, err)
		assert.True(t, granted)
		assert.Equal(t, 1, st.Credits)
	})

	t.Run("unchanged state skips the update", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("(?s)SELECT credits, last_refill_date.*FOR UPDATE").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(2, today))
		mock.ExpectCommit()

		st, err := s.Apply(ctx, "user-123", func(cur allowance.State) allowance.State {
			return policy.Refill(cur, today)
		})
		require.NoError(t, err)
		assert.Equal(t, 2, st.Credits)
	})

	t.Run("unknown account rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("(?s)SELECT credits, last_refill_date.*FOR UPDATE").
			WithArgs("ghost").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := s.Apply(ctx, "ghost", func(cur allowance.State) allowance.State { return cur })
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("update error rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("(?s)SELECT credits, last_refill_date.*FOR UPDATE").
			WithArgs("user-123").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(3, today))
		mock.ExpectExec("UPDATE users").
			WithArgs("user-123", 2, today).
			WillReturnError(fmt.Errorf("db error"))
		mock.ExpectRollback()

		_, err := s.Apply(ctx, "user-123", func(cur allowance.State) allowance.State {
			_, next := policy.TryConsume(cur, today, 1)
			return next
		})
		assert.Error(t, err)
	})

	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(fmt.Errorf("pool closed"))

		_, err := s.Apply(ctx, "user-123", func(cur allowance.State) allowance.State { return cur })
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
