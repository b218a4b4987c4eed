package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// Store keeps the live browsing sessions keyed by session ID.  Each
// session is owned by exactly one browser; the store only arbitrates
// creation and lookup, never the state inside a session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create mints a fresh session ID, wraps the grid in a new session and
// registers it.
func (st *Store) Create(movieTitle, showTime, date string, grid [][]model.Seat) *Session {
	s := New(uuid.NewString(), movieTitle, showTime, date, grid)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	return s, ok
}

// Delete removes a session.  Removing an unknown ID is a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
