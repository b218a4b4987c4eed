// Package booking orchestrates the commit-then-confirm flow: it
// validates the selection, flips the chosen seats to booked, mints the
// booking record and writes it to the ledger.  The error values below
// are the recoverable failure taxonomy of that flow; none of them
// should ever abort the application.
package booking

import "errors"

// ErrEmptySelection is returned when a checkout is attempted with no
// seats chosen.  It is checked before any state mutation, so a failed
// checkout leaves the grid and selection untouched.
var ErrEmptySelection = errors.New("booking: no seats selected")

// ErrNoActiveBooking is returned when the confirmation step is reached
// without a ticket intent, e.g. by navigating to the receipt directly.
var ErrNoActiveBooking = errors.New("booking: no booking in progress")

// ErrBookingIDCollision is returned when every minting attempt produced
// a bookingId that already exists in the ledger.  The commit fails; the
// ledger is never overwritten.
var ErrBookingIDCollision = errors.New("booking: could not mint a unique booking id")
