package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebook/movie-seat-booking/internal/ledger"
	"github.com/moviebook/movie-seat-booking/internal/model"
	"github.com/moviebook/movie-seat-booking/internal/queue"
	"github.com/moviebook/movie-seat-booking/internal/seatmap"
	"github.com/moviebook/movie-seat-booking/internal/session"
)

type capturedPublisher struct {
	events []queue.BookingConfirmedEvent
	err    error
}

func (p *capturedPublisher) PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	rules := []model.SeatTypeRule{
		{Type: "regular", Name: "Regular", Price: 150, Rows: []int{0, 1}},
		{Type: "premium", Name: "Premium", Price: 250, Rows: []int{2}},
	}
	grid, err := seatmap.Generate(model.Layout{Rows: 3, SeatsPerRow: 4, AislePosition: 2}, rules, nil)
	require.NoError(t, err)
	return session.New("s1", "Inception", "9:30 PM", "2026-09-04", grid)
}

func testFlow(l *ledger.Ledger, pub Publisher) *Flow {
	f := NewFlow(l, pub)
	f.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	seq := 0
	f.newID = func() string { seq++; return fmt.Sprintf("id-%d", seq) }
	return f
}

func TestCheckout_EmptySelection(t *testing.T) {
	l := ledger.New(ledger.NewMemoryStore())
	f := testFlow(l, nil)
	s := testSession(t)

	_, err := f.Checkout(s)
	assert.ErrorIs(t, err, ErrEmptySelection)

	records, err := l.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records, "a failed checkout must not write to the ledger")
}

func TestCheckoutThenConfirm(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.NewMemoryStore())
	pub := &capturedPublisher{}
	f := testFlow(l, pub)
	s := testSession(t)

	require.NoError(t, s.Toggle("A1")) // 150
	require.NoError(t, s.Toggle("A2")) // 150
	require.NoError(t, s.Toggle("C1")) // 250

	intent, err := f.Checkout(s)
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "C1"}, intent.Seats)
	assert.Equal(t, int64(550), intent.TotalPrice)
	assert.Equal(t, "Inception", intent.MovieTitle)
	assert.Empty(t, s.Selected(), "checkout must clear the selection")

	grid := s.Grid()
	assert.Equal(t, model.SeatBooked, grid[0][0].Status)
	assert.Equal(t, model.SeatBooked, grid[0][1].Status)
	assert.Equal(t, model.SeatBooked, grid[2][0].Status)

	rec, err := f.Confirm(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "id-1", rec.BookingID)
	assert.Equal(t, int64(550), rec.TotalPrice)
	assert.Equal(t, "2026-09-01T12:00:00Z", rec.BookingDate)
	assert.Equal(t, "9:30 PM", rec.ShowTime)

	records, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec, records[0], "the receipt must be re-derivable from the ledger alone")

	require.Len(t, pub.events, 1)
	assert.Equal(t, "id-1", pub.events[0].BookingID)

	// The intent is consumed: a second confirm has no booking in progress.
	_, err = f.Confirm(ctx, s)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestConfirm_NoActiveBooking(t *testing.T) {
	f := testFlow(ledger.New(ledger.NewMemoryStore()), nil)
	s := testSession(t)

	_, err := f.Confirm(context.Background(), s)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestConfirm_RetriesOnIDCollision(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.NewMemoryStore())
	require.NoError(t, l.Insert(ctx, model.BookingRecord{BookingID: "id-1", MovieTitle: "Dune", Seats: []string{"B1"}, TotalPrice: 150, BookingDate: "2026-08-30T10:00:00Z"}))

	f := testFlow(l, nil)
	s := testSession(t)
	require.NoError(t, s.Toggle("A1"))
	_, err := f.Checkout(s)
	require.NoError(t, err)

	rec, err := f.Confirm(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "id-2", rec.BookingID, "collision must retry with a fresh id")

	records, err := l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestConfirm_GivesUpAfterExhaustedIDs(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.NewMemoryStore())
	require.NoError(t, l.Insert(ctx, model.BookingRecord{BookingID: "stuck", MovieTitle: "Dune", Seats: []string{"B1"}, TotalPrice: 150, BookingDate: "2026-08-30T10:00:00Z"}))

	f := testFlow(l, nil)
	f.newID = func() string { return "stuck" }
	s := testSession(t)
	require.NoError(t, s.Toggle("A1"))
	_, err := f.Checkout(s)
	require.NoError(t, err)

	_, err = f.Confirm(ctx, s)
	assert.ErrorIs(t, err, ErrBookingIDCollision)

	// The intent survives a failed confirm so the user can retry.
	_, ok := s.Intent()
	assert.True(t, ok)
}

func TestConfirm_PublishFailureDoesNotFailBooking(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(ledger.NewMemoryStore())
	pub := &capturedPublisher{err: assert.AnError}
	f := testFlow(l, pub)
	s := testSession(t)
	require.NoError(t, s.Toggle("A1"))
	_, err := f.Checkout(s)
	require.NoError(t, err)

	rec, err := f.Confirm(ctx, s)
	require.NoError(t, err)

	records, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.BookingID, records[0].BookingID)
}
