package allowance

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Service applies the Policy to stored allowances.
type Service struct {
	store  Store
	clock  Clock
	policy Policy
	logger *zap.Logger
}

func NewService(store Store, clock Clock, policy Policy, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		clock:  clock,
		policy: policy,
		logger: logger,
	}
}

func (s *Service) Policy() Policy {
	return s.policy
}

// Initial returns the allowance to seed a new account with.
func (s *Service) Initial() State {
	return s.policy.Initial(Today(s.clock))
}

// Refresh applies the daily refill and persists it.
func (s *Service) Refresh(ctx context.Context, accountID string) (State, error) {
	today := Today(s.clock)
	state, err := s.store.Apply(ctx, accountID, func(cur State) State {
		return s.policy.Refill(cur, today)
	})
	if err != nil {
		return State{}, fmt.Errorf("refresh allowance: %w", err)
	}
	return state, nil
}

// Consume refills and tries to spend amount credits as one serialized step.
// The resulting state is committed whether or not the spend was granted.
func (s *Service) Consume(ctx context.Context, accountID string, amount int) (bool, State, error) {
	today := Today(s.clock)

	var granted bool
	state, err := s.store.Apply(ctx, accountID, func(cur State) State {
		var next State
		granted, next = s.policy.TryConsume(cur, today, amount)
		return next
	})
	if err != nil {
		return false, State{}, fmt.Errorf("consume allowance: %w", err)
	}

	if !granted {
		s.logger.Debug("credit spend denied",
			zap.String("account_id", accountID),
			zap.Int("credits", state.Credits))
	}
	return granted, state, nil
}

// Refund returns amount credits to the account, capped at the policy maximum.
func (s *Service) Refund(ctx context.Context, accountID string, amount int) (State, error) {
	state, err := s.store.Apply(ctx, accountID, func(cur State) State {
		return s.policy.Restore(cur, amount)
	})
	if err != nil {
		return State{}, fmt.Errorf("refund allowance: %w", err)
	}
	return state, nil
}
