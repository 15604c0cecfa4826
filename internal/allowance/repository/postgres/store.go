package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kolhesatish/content-app/db"
	"github.com/kolhesatish/content-app/internal/allowance"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
)

// AllowanceStore keeps the allowance on the users row. Apply holds a row lock
// for the whole read-decide-write, so concurrent spends on one account queue
// behind each other.
type AllowanceStore struct {
	db db.Pool
}

func NewAllowanceStore(pool db.Pool) *AllowanceStore {
	return &AllowanceStore{db: pool}
}

const (
	selectAllowance = `
		SELECT credits, last_refill_date
		FROM users
		WHERE id = $1;
	`
	selectAllowanceForUpdate = `
		SELECT credits, last_refill_date
		FROM users
		WHERE id = $1
		FOR UPDATE;
	`
	updateAllowance = `
		UPDATE users
		SET credits = $2, last_refill_date = $3, updated_at = now()
		WHERE id = $1;
	`
)

func scanState(row pgx.Row, accountID string) (allowance.State, error) {
	var (
		credits int
		last    time.Time
	)
	if err := row.Scan(&credits, &last); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return allowance.State{}, fmt.Errorf("allowance %s: %w", accountID, apperrors.ErrNotFound)
		}
		return allowance.State{}, fmt.Errorf("failed to read allowance: %w", err)
	}
	return allowance.State{Credits: credits, LastRefillDate: allowance.DateOf(last)}, nil
}

func (s *AllowanceStore) Read(ctx context.Context, accountID string) (allowance.State, error) {
	return scanState(s.db.QueryRow(ctx, selectAllowance, accountID), accountID)
}

func (s *AllowanceStore) Commit(ctx context.Context, accountID string, st allowance.State) error {
	tag, err := s.db.Exec(ctx, updateAllowance, accountID, st.Credits, st.LastRefillDate)
	if err != nil {
		return fmt.Errorf("failed to commit allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("allowance %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}

func (s *AllowanceStore) Apply(ctx context.Context, accountID string, fn func(allowance.State) allowance.State) (allowance.State, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return allowance.State{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cur, err := scanState(tx.QueryRow(ctx, selectAllowanceForUpdate, accountID), accountID)
	if err != nil {
		return allowance.State{}, err
	}

	next := fn(cur)
	if next != cur {
		if _, err := tx.Exec(ctx, updateAllowance, accountID, next.Credits, next.LastRefillDate); err != nil {
			return allowance.State{}, fmt.Errorf("failed to update allowance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return allowance.State{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, nil
}
