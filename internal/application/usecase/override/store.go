// Package override contains the manual override store and its mutation use cases.
package override

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
)

// Store holds manual paid flags and the manual reserve amount in memory.
// Mutations apply immediately; persistence runs behind them and its outcome
// never rolls the in-memory state back. State is hydrated from the repository
// once per user, on first access.
type Store struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*userOverrides
	repo  adapter.OverrideRepository
}

type userOverrides struct {
	manualPaid    map[string]map[uuid.UUID]struct{} // month key -> expense ids
	manualReserve decimal.Decimal
}

// NewStore creates a new override store backed by the given repository.
func NewStore(repo adapter.OverrideRepository) *Store {
	return &Store{
		users: make(map[uuid.UUID]*userOverrides),
		repo:  repo,
	}
}

// TogglePaid flips the manual paid flag for one expense in one month and
// returns the resulting state (true = now flagged paid).
func (s *Store) TogglePaid(ctx context.Context, userID uuid.UUID, monthKey string, expenseID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, userID)
	if err != nil {
		return false, err
	}

	set, ok := state.manualPaid[monthKey]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		state.manualPaid[monthKey] = set
	}

	if _, paid := set[expenseID]; paid {
		delete(set, expenseID)
		return false, nil
	}
	set[expenseID] = struct{}{}
	return true, nil
}

// SetReserve replaces the manual reserve scalar.
func (s *Store) SetReserve(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, userID)
	if err != nil {
		return err
	}
	state.manualReserve = amount
	return nil
}

// ManualPaidSet returns a copy of the manual paid set for the month key.
func (s *Store) ManualPaidSet(ctx context.Context, userID uuid.UUID, monthKey string) (map[uuid.UUID]struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID]struct{}, len(state.manualPaid[monthKey]))
	for id := range state.manualPaid[monthKey] {
		out[id] = struct{}{}
	}
	return out, nil
}

// ManualReserve returns the current manual reserve amount.
func (s *Store) ManualReserve(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.stateLocked(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	return state.manualReserve, nil
}

// stateLocked returns the user's state, hydrating it from the repository on
// first access. Callers must hold s.mu.
func (s *Store) stateLocked(ctx context.Context, userID uuid.UUID) (*userOverrides, error) {
	if state, ok := s.users[userID]; ok {
		return state, nil
	}

	state := &userOverrides{
		manualPaid:    make(map[string]map[uuid.UUID]struct{}),
		manualReserve: decimal.Zero,
	}

	if s.repo != nil {
		persisted, err := s.repo.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		if persisted != nil {
			for monthKey, ids := range persisted.ManualPaid {
				set := make(map[uuid.UUID]struct{}, len(ids))
				for _, id := range ids {
					set[id] = struct{}{}
				}
				state.manualPaid[monthKey] = set
			}
			state.manualReserve = persisted.ManualReserve
		}
	}

	s.users[userID] = state
	return state, nil
}
