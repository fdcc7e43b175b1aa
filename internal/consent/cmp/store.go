// Package cmp is a dummy Consent Management Platform used to exercise the
// reference adapter. It keeps consent flags in memory and reports every
// mutation to its observers. Do not use it as a real CMP.
package cmp

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"cmpref/internal/consent/models"
)

// Observer receives change sets after every store mutation. Calls happen
// synchronously on the mutating goroutine, outside the store lock.
type Observer interface {
	ConsentChanged(changes ChangeSet)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(changes ChangeSet)

func (f ObserverFunc) ConsentChanged(changes ChangeSet) { f(changes) }

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       uuid.UUID
	store    *Store
	observer Observer
}

// ID returns the subscription identifier.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// Cancel removes the subscription from its store. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.store == nil {
		return
	}
	s.store.Unsubscribe(s)
}

// Store holds the CMP consent state. A single mutex guards both the flags and
// the observer list.
type Store struct {
	mu          sync.RWMutex
	state       State
	observers   []*Subscription
	coinFlip    func() bool
	logger      *slog.Logger
	initialized bool
}

// Option configures the Store.
type Option func(*Store)

// WithSeed makes simulated updates reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Store) {
		r := rand.New(rand.NewSource(seed))
		s.coinFlip = func() bool { return r.Intn(2) == 1 }
	}
}

// WithCoinFlip replaces the random source used by SimulateExternalUpdate.
func WithCoinFlip(fn func() bool) Option {
	return func(s *Store) {
		if fn != nil {
			s.coinFlip = fn
		}
	}
}

// WithLogger sets the logger instance for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New constructs a store seeded with the given initial state.
func New(initial State, opts ...Option) *Store {
	s := &Store{state: initial.Clone()}
	for _, opt := range opts {
		opt(s)
	}
	if s.coinFlip == nil {
		WithSeed(uint64(time.Now().UnixNano()))(s)
	}
	return s
}

// Initialize prepares the CMP for use. The reference CMP has nothing to set up.
func (s *Store) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	return nil
}

// Initialized reports whether Initialize has completed.
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// ShouldCollectConsent reports whether the CMP still needs a consent decision.
func (s *Store) ShouldCollectConsent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ShouldCollectConsent
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// GrantAll sets every standard flag to granted.
func (s *Store) GrantAll() {
	s.apply("grant_all", func(st *State) ChangeSet {
		st.ShouldCollectConsent = false
		return setAllStandard(st, true)
	})
}

// DenyAll sets every standard flag to denied.
func (s *Store) DenyAll() {
	s.apply("deny_all", func(st *State) ChangeSet {
		st.ShouldCollectConsent = false
		return setAllStandard(st, false)
	})
}

// Reset returns every standard flag to the denied baseline and marks consent
// as needing collection again.
func (s *Store) Reset() {
	s.apply("reset", func(st *State) ChangeSet {
		st.ShouldCollectConsent = true
		return setAllStandard(st, false)
	})
}

// SimulateExternalUpdate emulates the user finishing a CMP dialog: every flag
// gets a new pseudo-random value and only keys whose value changed are
// reported.
func (s *Store) SimulateExternalUpdate() ChangeSet {
	return s.apply("simulate_external_update", func(st *State) ChangeSet {
		st.ShouldCollectConsent = false
		var changes ChangeSet
		for _, key := range models.StandardKeys {
			next := s.coinFlip()
			if prev, _ := st.Standard(key); prev != next {
				st.setStandard(key, next)
				changes.Standard = append(changes.Standard, key)
			}
		}
		for _, id := range slices.Sorted(maps.Keys(st.Partners)) {
			next := s.coinFlip()
			if st.Partners[id] != next {
				st.Partners[id] = next
				changes.Partners = append(changes.Partners, id)
			}
		}
		return changes
	})
}

// Subscribe registers an observer for change notifications.
func (s *Store) Subscribe(observer Observer) *Subscription {
	sub := &Subscription{id: uuid.New(), store: s, observer: observer}
	s.mu.Lock()
	s.observers = append(s.observers, sub)
	s.mu.Unlock()
	return sub
}

// Unsubscribe removes a previously registered observer.
func (s *Store) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = slices.DeleteFunc(s.observers, func(o *Subscription) bool {
		return o.id == sub.id
	})
}

// ObserverCount returns the number of registered observers.
func (s *Store) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

func (s *Store) apply(op string, mutate func(st *State) ChangeSet) ChangeSet {
	s.mu.Lock()
	changes := mutate(&s.state)
	observers := slices.Clone(s.observers)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("cmp state mutated",
			"operation", op,
			"changed_keys", changes.Len(),
			"observers", len(observers),
		)
	}
	if changes.IsEmpty() {
		return changes
	}
	for _, sub := range observers {
		sub.observer.ConsentChanged(changes)
	}
	return changes
}

func setAllStandard(st *State, granted bool) ChangeSet {
	for _, key := range models.StandardKeys {
		st.setStandard(key, granted)
	}
	return ChangeSet{Standard: slices.Clone(models.StandardKeys)}
}
