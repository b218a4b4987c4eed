// Package session owns the per-browsing-session state: the seat grid,
// the in-progress selection and the ticket intent handed off to the
// confirmation step.  Sessions live only in process memory; the grid is
// deliberately never persisted, a restart simply starts fresh sessions
// while committed bookings survive in the ledger.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// ErrSeatBooked is returned when a toggle is attempted on a booked
// seat.  Callers are expected to swallow it: a click on a booked seat
// is a normal race against a stale render, not a hard failure.
var ErrSeatBooked = errors.New("session: seat is already booked")

// ErrUnknownSeat is returned when a seat ID does not exist in the grid.
var ErrUnknownSeat = errors.New("session: unknown seat id")

// Session holds one user's booking state.  All mutating and reading
// methods take the session mutex, so a session is safe to share between
// the handlers that operate on it; operations remain totally ordered.
type Session struct {
	ID         string
	MovieTitle string
	ShowTime   string
	Date       string
	CreatedAt  time.Time

	mu       sync.Mutex
	grid     [][]model.Seat
	index    map[string]*model.Seat // seat ID -> grid entry
	selected []string               // seat IDs in click order
	intent   *model.TicketIntent
}

// New builds a session around an already generated grid.  The session
// takes ownership of the grid; callers must not keep mutating it.
func New(id, movieTitle, showTime, date string, grid [][]model.Seat) *Session {
	s := &Session{
		ID:         id,
		MovieTitle: movieTitle,
		ShowTime:   showTime,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
		grid:       grid,
		index:      make(map[string]*model.Seat),
	}
	for row := range grid {
		for col := range grid[row] {
			seat := &grid[row][col]
			s.index[seat.ID] = seat
		}
	}
	return s
}

// Toggle flips the selection state of one seat.  A booked seat is
// rejected with ErrSeatBooked and the selection set is left untouched.
// Toggling the same available seat twice restores the prior state.
func (s *Session) Toggle(seatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	seat, ok := s.index[seatID]
	if !ok {
		return ErrUnknownSeat
	}
	if seat.Status == model.SeatBooked {
		return ErrSeatBooked
	}
	if seat.Selected {
		seat.Selected = false
		for i, id := range s.selected {
			if id == seatID {
				s.selected = append(s.selected[:i], s.selected[i+1:]...)
				break
			}
		}
		return nil
	}
	seat.Selected = true
	s.selected = append(s.selected, seatID)
	return nil
}

// Selected returns the currently selected seat IDs in click order.
func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Total recomputes the selection total from the grid on every call so
// it can never serve a stale value.
func (s *Session) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Session) totalLocked() int64 {
	var total int64
	for _, id := range s.selected {
		total += s.index[id].Price
	}
	return total
}

// Clear empties the selection set, used after a commit or when the user
// navigates away mid-flow.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.selected {
		s.index[id].Selected = false
	}
	s.selected = nil
}

// CommitSelection atomically flips every selected seat to Booked,
// clears the selection and returns the committed seat IDs with their
// total.  It reports ok=false without touching anything when the
// selection is empty, so a failed commit never half-updates the grid.
func (s *Session) CommitSelection() (seats []string, total int64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.selected) == 0 {
		return nil, 0, false
	}
	total = s.totalLocked()
	seats = make([]string, len(s.selected))
	copy(seats, s.selected)
	for _, id := range s.selected {
		seat := s.index[id]
		seat.Status = model.SeatBooked
		seat.Selected = false
	}
	s.selected = nil
	return seats, total, true
}

// Grid returns a deep copy of the seat grid so callers can render it
// without holding a reference into session-owned state.
func (s *Session) Grid() [][]model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]model.Seat, len(s.grid))
	for i, row := range s.grid {
		out[i] = make([]model.Seat, len(row))
		copy(out[i], row)
	}
	return out
}

// SetIntent stores the ticket intent produced by the commit step.
func (s *Session) SetIntent(intent model.TicketIntent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = &intent
}

// Intent returns the pending ticket intent, or false when the
// confirmation step was reached without a booking in progress.
func (s *Session) Intent() (model.TicketIntent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.intent == nil {
		return model.TicketIntent{}, false
	}
	return *s.intent, true
}

// ClearIntent drops the pending intent once it has been persisted.
func (s *Session) ClearIntent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = nil
}
