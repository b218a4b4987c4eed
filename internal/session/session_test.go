package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebook/movie-seat-booking/internal/model"
	"github.com/moviebook/movie-seat-booking/internal/seatmap"
)

func newTestSession(t *testing.T, booked ...string) *Session {
	t.Helper()
	rules := []model.SeatTypeRule{
		{Type: "regular", Name: "Regular", Price: 150, Rows: []int{0, 1}},
		{Type: "premium", Name: "Premium", Price: 250, Rows: []int{2}},
	}
	grid, err := seatmap.Generate(model.Layout{Rows: 3, SeatsPerRow: 4, AislePosition: 2}, rules, booked)
	require.NoError(t, err)
	return New("test-session", "Inception", "7:00 PM", "Today", grid)
}

func TestToggle_Involution(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Toggle("A1"))
	assert.Equal(t, []string{"A1"}, s.Selected())

	require.NoError(t, s.Toggle("A1"))
	assert.Empty(t, s.Selected(), "toggling the same seat twice must restore the prior state")
	assert.Zero(t, s.Total())
}

func TestToggle_BookedSeatRejected(t *testing.T) {
	s := newTestSession(t, "B2")

	err := s.Toggle("B2")
	assert.ErrorIs(t, err, ErrSeatBooked)
	assert.Empty(t, s.Selected())
}

func TestToggle_UnknownSeat(t *testing.T) {
	s := newTestSession(t)
	assert.ErrorIs(t, s.Toggle("Z9"), ErrUnknownSeat)
}

func TestTotal_RecomputedPerSelection(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Toggle("A1")) // 150
	require.NoError(t, s.Toggle("A2")) // 150
	require.NoError(t, s.Toggle("C1")) // 250
	assert.Equal(t, int64(550), s.Total())

	require.NoError(t, s.Toggle("A2"))
	assert.Equal(t, int64(400), s.Total())
}

func TestClear(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Toggle("A1"))
	require.NoError(t, s.Toggle("B1"))

	s.Clear()

	assert.Empty(t, s.Selected())
	for _, row := range s.Grid() {
		for _, seat := range row {
			assert.False(t, seat.Selected, "seat %s still selected after Clear", seat.ID)
			assert.Equal(t, model.SeatAvailable, seat.Status)
		}
	}
}

func TestCommitSelection(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Toggle("A1"))
	require.NoError(t, s.Toggle("C3"))

	seats, total, ok := s.CommitSelection()
	require.True(t, ok)
	assert.Equal(t, []string{"A1", "C3"}, seats, "seat order must match click order")
	assert.Equal(t, int64(400), total)
	assert.Empty(t, s.Selected())

	grid := s.Grid()
	assert.Equal(t, model.SeatBooked, grid[0][0].Status)
	assert.Equal(t, model.SeatBooked, grid[2][2].Status)
	assert.False(t, grid[0][0].Selected)

	// Booked is terminal: the seat can no longer be toggled.
	assert.ErrorIs(t, s.Toggle("A1"), ErrSeatBooked)
}

func TestCommitSelection_Empty(t *testing.T) {
	s := newTestSession(t)
	_, _, ok := s.CommitSelection()
	assert.False(t, ok)
}

func TestIntentHandOff(t *testing.T) {
	s := newTestSession(t)

	_, ok := s.Intent()
	assert.False(t, ok, "fresh session must report no booking in progress")

	s.SetIntent(model.TicketIntent{MovieTitle: "Inception", Seats: []string{"A1"}, TotalPrice: 150})
	intent, ok := s.Intent()
	require.True(t, ok)
	assert.Equal(t, int64(150), intent.TotalPrice)

	s.ClearIntent()
	_, ok = s.Intent()
	assert.False(t, ok)
}

func TestStore(t *testing.T) {
	st := NewStore()
	s := st.Create("Dune", "", "", nil)
	require.NotEmpty(t, s.ID)

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	st.Delete(s.ID)
	_, ok = st.Get(s.ID)
	assert.False(t, ok)
}
