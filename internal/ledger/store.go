package ledger

import "fjacquet/finance-tracker/internal/models"

// Listener observes the aggregate after each applied transition. The
// persistence adapter registers one to save the new version.
type Listener func(models.AppState)

// Store holds the latest version of the root aggregate and serializes
// transitions through Dispatch. Every transition replaces the whole
// aggregate, so readers holding an earlier State() result never observe a
// half-applied change.
//
// The store is an explicit, injectable value rather than a package-level
// singleton. It is meant for single-goroutine use; the execution model has
// exactly one mutation in flight at a time, so it carries no lock.
type Store struct {
	state     models.AppState
	listeners []Listener
}

// NewStore creates a store seeded with the given aggregate.
func NewStore(initial models.AppState) *Store {
	return &Store{state: initial}
}

// State returns the current version of the aggregate.
func (st *Store) State() models.AppState {
	return st.state
}

// Dispatch applies an action and notifies listeners of the new version.
func (st *Store) Dispatch(action models.Action) {
	st.state = Apply(st.state, action)
	for _, listener := range st.listeners {
		listener(st.state)
	}
}

// Subscribe registers a listener invoked after every dispatch.
func (st *Store) Subscribe(listener Listener) {
	st.listeners = append(st.listeners, listener)
}

// CurrentMonth returns the month the aggregate currently points at, or
// false when no month is selected.
func (st *Store) CurrentMonth() (models.Month, bool) {
	return st.state.CurrentMonth()
}
