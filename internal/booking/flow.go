package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/moviebook/movie-seat-booking/internal/ledger"
	"github.com/moviebook/movie-seat-booking/internal/model"
	"github.com/moviebook/movie-seat-booking/internal/queue"
	"github.com/moviebook/movie-seat-booking/internal/session"
)

// idAttempts bounds how often Confirm re-mints a bookingId after a
// ledger collision before giving up with ErrBookingIDCollision.
const idAttempts = 5

// Publisher emits the confirmation event after a booking is persisted.
// Publishing is best effort; see Confirm.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// Flow is the booking flow controller.  It owns no state of its own;
// all mutation happens through the session and the ledger.
type Flow struct {
	Ledger    *ledger.Ledger
	Publisher Publisher // optional

	// now and newID exist so tests can pin time and force collisions.
	now   func() time.Time
	newID func() string
}

// NewFlow returns a Flow with the wall clock and a Unix-millisecond
// bookingId mint.  The millisecond token mirrors the persisted ledger
// schema, where bookingIds have always been epoch-millisecond strings.
func NewFlow(l *ledger.Ledger, pub Publisher) *Flow {
	return &Flow{
		Ledger:    l,
		Publisher: pub,
		now:       time.Now,
		newID: func() string {
			return strconv.FormatInt(time.Now().UnixMilli(), 10)
		},
	}
}

// Checkout performs the seat commit for the session: it rejects an
// empty selection before touching anything, then atomically books every
// selected seat, clears the selection and stores the resulting ticket
// intent on the session for the confirmation step.  The intent is also
// returned for immediate hand-off to the summary view.
func (f *Flow) Checkout(s *session.Session) (model.TicketIntent, error) {
	seats, total, ok := s.CommitSelection()
	if !ok {
		return model.TicketIntent{}, ErrEmptySelection
	}
	intent := model.TicketIntent{
		MovieTitle: s.MovieTitle,
		Seats:      seats,
		TotalPrice: total,
		ShowTime:   s.ShowTime,
		Date:       s.Date,
	}
	s.SetIntent(intent)
	return intent, nil
}

// Confirm turns the session's pending ticket intent into a persisted
// BookingRecord.  It mints a fresh bookingId (retrying with a new one
// on a ledger collision), stamps the commit time, inserts the record at
// the ledger head, publishes the confirmation event and finally drops
// the intent.  Without a pending intent it fails with
// ErrNoActiveBooking and changes nothing.
func (f *Flow) Confirm(ctx context.Context, s *session.Session) (model.BookingRecord, error) {
	intent, ok := s.Intent()
	if !ok {
		return model.BookingRecord{}, ErrNoActiveBooking
	}
	rec := model.BookingRecord{
		MovieTitle:  intent.MovieTitle,
		Seats:       intent.Seats,
		TotalPrice:  intent.TotalPrice,
		ShowTime:    intent.ShowTime,
		Date:        intent.Date,
		BookingDate: f.now().UTC().Format(time.RFC3339),
	}

	inserted := false
	for attempt := 0; attempt < idAttempts; attempt++ {
		rec.BookingID = f.newID()
		err := f.Ledger.Insert(ctx, rec)
		if err == nil {
			inserted = true
			break
		}
		if !errors.Is(err, ledger.ErrDuplicateID) {
			return model.BookingRecord{}, err
		}
		// Collision against an existing receipt: mint again.  Back off
		// one millisecond so a fast retry lands on a new token.
		time.Sleep(time.Millisecond)
	}
	if !inserted {
		return model.BookingRecord{}, ErrBookingIDCollision
	}

	if f.Publisher != nil {
		if err := f.Publisher.PublishBookingConfirmed(ctx, queue.NewBookingConfirmedEvent(rec)); err != nil {
			// The receipt is already durable; a broker outage must not
			// fail the booking.
			log.Printf("booking: publish confirmation for %s failed: %v", rec.BookingID, err)
		}
	}

	s.ClearIntent()
	return rec, nil
}
