// Package memory is the user store used when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/kolhesatish/content-app/internal/allowance"
	"github.com/kolhesatish/content-app/internal/auth/domain"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
)

// UserRepository keeps users in memory and mirrors their allowance into an
// allowance.MemoryStore, which stays the source of truth for credits.
type UserRepository struct {
	mu         sync.RWMutex
	byID       map[string]domain.User
	byUsername map[string]string
	allowances *allowance.MemoryStore
}

func NewUserRepository(allowances *allowance.MemoryStore) *UserRepository {
	return &UserRepository{
		byID:       make(map[string]domain.User),
		byUsername: make(map[string]string),
		allowances: allowances,
	}
}

func (r *UserRepository) withAllowance(ctx context.Context, u domain.User) *domain.User {
	if st, err := r.allowances.Read(ctx, u.ID); err == nil {
		u.Credits = st.Credits
		u.LastRefillDate = st.LastRefillDate
	}
	return &u
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	id, ok := r.byUsername[username]
	var u domain.User
	if ok {
		u = r.byID[id]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return r.withAllowance(ctx, u), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	u, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return r.withAllowance(ctx, u), nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[user.Username]; taken {
		return apperrors.ErrUsernameTaken
	}
	r.byID[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	r.allowances.Put(user.ID, allowance.State{Credits: user.Credits, LastRefillDate: user.LastRefillDate})
	return nil
}
