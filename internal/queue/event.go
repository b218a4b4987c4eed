// Package queue defines message payloads exchanged over the message broker.
package queue

import "github.com/moviebook/movie-seat-booking/internal/model"

// BookingConfirmedEvent is published when a booking has been written to
// the ledger.  It carries the full receipt so downstream consumers (the
// receipt log, notifications, analytics) never need to read the ledger.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	MovieTitle  string   `json:"movie_title"`
	Seats       []string `json:"seats"`
	TotalPrice  int64    `json:"total_price"`
	ShowTime    string   `json:"show_time"`
	Date        string   `json:"date"`
	BookingDate string   `json:"booking_date"`
}

// NewBookingConfirmedEvent builds the event from a persisted record,
// applying the render-time defaults for the optional display fields.
func NewBookingConfirmedEvent(rec model.BookingRecord) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		BookingID:   rec.BookingID,
		MovieTitle:  rec.MovieTitle,
		Seats:       rec.Seats,
		TotalPrice:  rec.TotalPrice,
		ShowTime:    rec.DisplayShowTime(),
		Date:        rec.DisplayDate(),
		BookingDate: rec.BookingDate,
	}
}
