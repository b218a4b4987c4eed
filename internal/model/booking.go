package model

// Render-time defaults for optional display fields.  They are applied
// when a receipt is rendered, never at write time, so the persisted
// record keeps the fields empty when the user supplied nothing.
const (
	DefaultShowTime = "7:00 PM"
	DefaultDate     = "Today"
)

// TicketIntent is the in-memory hand-off between the seat-commit step
// and the confirmation step.  It carries everything the confirmation
// view needs to mint and persist a BookingRecord.  An intent only lives
// inside its browsing session; reaching the confirmation step without
// one is the "no booking in progress" state.
type TicketIntent struct {
	MovieTitle string   `json:"movie_title"`
	Seats      []string `json:"seats"`
	TotalPrice int64    `json:"total_price"`
	ShowTime   string   `json:"show_time,omitempty"`
	Date       string   `json:"date,omitempty"`
}

// BookingRecord is an immutable receipt of a committed booking.  The
// JSON tags define the persisted ledger schema, so changing them is a
// breaking change for previously written ledgers.
//
// Fields:
//  BookingID   – unique, time-derived token minted at confirmation.
//  MovieTitle  – title captured from the movie metadata collaborator.
//  Seats       – seat IDs in the order the user chose them, non-empty.
//  TotalPrice  – sum of the per-seat prices at commit time.
//  ShowTime    – optional display field (see DefaultShowTime).
//  Date        – optional display field (see DefaultDate).
//  BookingDate – RFC3339 commit timestamp.  Kept as a string so that a
//                record with a mangled timestamp still loads; queries
//                treat unparsable dates as Past.
type BookingRecord struct {
	BookingID   string   `json:"bookingId"`
	MovieTitle  string   `json:"movieTitle"`
	Seats       []string `json:"seats"`
	TotalPrice  int64    `json:"totalPrice"`
	ShowTime    string   `json:"showTime,omitempty"`
	Date        string   `json:"date,omitempty"`
	BookingDate string   `json:"bookingDate"`
}

// DisplayShowTime returns the show time with the render-time default
// applied.
func (r BookingRecord) DisplayShowTime() string {
	if r.ShowTime == "" {
		return DefaultShowTime
	}
	return r.ShowTime
}

// DisplayDate returns the show date with the render-time default
// applied.
func (r BookingRecord) DisplayDate() string {
	if r.Date == "" {
		return DefaultDate
	}
	return r.Date
}
