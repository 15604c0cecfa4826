package allowance

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	clock := NewFixedClock(day("2024-01-02").Add(8 * time.Hour))
	store := NewMemoryStore()
	store.Put("acc-1", State{Credits: 1, LastRefillDate: day("2024-01-01")})
	svc := NewService(store, clock, DefaultPolicy(), nil)

	got, err := svc.Refresh(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Credits)

	// Same day: no second grant.
	clock.Advance(10 * time.Hour)
	got, err = svc.Refresh(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Credits)

	// Next day: capped at the maximum.
	clock.Advance(24 * time.Hour)
	got, err = svc.Refresh(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Credits)
}

func TestService_ConsumePersistsRefillOnDenial(t *testing.T) {
	ctx := context.Background()
	clock := NewFixedClock(day("2024-01-02"))
	store := NewMemoryStore()
	store.Put("acc-1", State{Credits: 0, LastRefillDate: day("2024-01-01")})
	svc := NewService(store, clock, NewPolicy(2, 5), nil)

	granted, _, err := svc.Consume(ctx, "acc-1", 3)
	require.NoError(t, err)
	assert.False(t, granted)

	stored, err := store.Read(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Credits)
	assert.True(t, stored.LastRefillDate.Equal(day("2024-01-02")))
}

func TestService_ConsumeUntilEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	svc := NewService(store, NewFixedClock(day("2024-02-01")), DefaultPolicy(), nil)
	store.Put("acc-1", svc.Initial())

	for i := DefaultMaxCredits - 1; i >= 0; i-- {
		granted, state, err := svc.Consume(ctx, "acc-1", 1)
		require.NoError(t, err)
		require.True(t, granted)
		assert.Equal(t, i, state.Credits)
	}

	granted, state, err := svc.Consume(ctx, "acc-1", 1)
	require.NoError(t, err)
	assert.False(t, granted)
	assert.Equal(t, 0, state.Credits)
}

func TestService_Refund(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Put("acc-1", State{Credits: 4, LastRefillDate: day("2024-02-01")})
	svc := NewService(store, NewFixedClock(day("2024-02-01")), DefaultPolicy(), nil)

	got, err := svc.Refund(ctx, "acc-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Credits)

	got, err = svc.Refund(ctx, "acc-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Credits)
}

func TestService_UnknownAccount(t *testing.T) {
	svc := NewService(NewMemoryStore(), SystemClock{}, DefaultPolicy(), nil)

	_, _, err := svc.Consume(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Refresh(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
