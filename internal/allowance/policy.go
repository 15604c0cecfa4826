// Package allowance implements the daily credit allowance: a pure refill and
// consumption policy, the stores that persist it, and the service that runs
// the policy against a store one account at a time.
package allowance

import (
	"fmt"
	"time"
)

const (
	DefaultDailyGrant = 2
	DefaultMaxCredits = 5
)

// State is the persisted allowance of one account.
type State struct {
	Credits        int
	LastRefillDate time.Time
}

// Policy decides refills and spends. It performs no I/O.
type Policy struct {
	DailyGrant int
	MaxCredits int
}

// NewPolicy panics on negative values; those are configuration bugs.
func NewPolicy(dailyGrant, maxCredits int) Policy {
	if dailyGrant < 0 || maxCredits < 0 {
		panic(fmt.Sprintf("allowance: invalid policy grant=%d max=%d", dailyGrant, maxCredits))
	}
	return Policy{DailyGrant: dailyGrant, MaxCredits: maxCredits}
}

func DefaultPolicy() Policy {
	return NewPolicy(DefaultDailyGrant, DefaultMaxCredits)
}

// Initial is the allowance a freshly registered account starts with.
func (p Policy) Initial(today time.Time) State {
	return State{Credits: p.MaxCredits, LastRefillDate: DateOf(today)}
}

// Refill tops up the balance once per calendar day, capped at MaxCredits.
// A second call on the same day returns s unchanged.
func (p Policy) Refill(s State, today time.Time) State {
	today = DateOf(today)
	if DateOf(s.LastRefillDate).Equal(today) {
		return s
	}
	return State{
		Credits:        min(s.Credits+p.DailyGrant, p.MaxCredits),
		LastRefillDate: today,
	}
}

// TryConsume refills, then spends amount if the balance covers it. On denial
// the refilled state is returned so the caller still persists the top-up.
func (p Policy) TryConsume(s State, today time.Time, amount int) (bool, State) {
	if amount <= 0 {
		panic(fmt.Sprintf("allowance: consume amount must be positive, got %d", amount))
	}

	refilled := p.Refill(s, today)
	if refilled.Credits < amount {
		return false, refilled
	}
	refilled.Credits -= amount
	return true, refilled
}

// Restore gives back amount credits without exceeding MaxCredits.
func (p Policy) Restore(s State, amount int) State {
	s.Credits = min(s.Credits+amount, p.MaxCredits)
	return s
}
