package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/kolhesatish/content-app/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

// User is an account. Credits and LastRefillDate are owned by the allowance
// service; the auth code only reads them.
type User struct {
	ID             string
	Username       string
	PasswordHash   string
	Credits        int
	LastRefillDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserRepository returns (nil, nil) from the getters when no user matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}
