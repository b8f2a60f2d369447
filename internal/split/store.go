package split

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps every live session in memory, keyed by id. Sessions do
// not survive a restart. Snapshots are whole values, so an update
// replaces the session in a single step under the lock and readers
// never observe a half-applied command.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Create assigns a fresh id and stores the session.
func (st *Store) Create(s Session) Session {
	s.ID = uuid.New().String()

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s
}

func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s.clone(), nil
}

// Update applies a command to the current snapshot and swaps in the
// result. The command runs under the lock, so concurrent edits to the
// same session cannot lose each other's writes. A failing command
// leaves the stored session untouched.
func (st *Store) Update(id string, apply func(Session) (Session, error)) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	cur, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	// The command gets its own copy; a failing command can never leak
	// partial writes into the stored snapshot.
	next, err := apply(cur.clone())
	if err != nil {
		return Session{}, err
	}

	st.sessions[id] = next
	return next.clone(), nil
}
