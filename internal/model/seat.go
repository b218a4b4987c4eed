package model

// Layout describes the static geometry of a seating grid.  The grid is
// generated once per browsing session and never regenerated mid-session;
// regenerating would silently discard the user's selection.
//
// Fields:
//  Rows          – number of seat rows (letters A, B, C, …).
//  SeatsPerRow   – number of seats in every row.
//  AislePosition – column index where the aisle splits the row.  Zero or
//                  SeatsPerRow means no visible split.  Purely a display
//                  hint; it does not affect seat identity.
type Layout struct {
	Rows          int `json:"rows"`
	SeatsPerRow   int `json:"seats_per_row"`
	AislePosition int `json:"aisle_position"`
}

// SeatTypeRule maps a set of row indices to a price category.  Rules are
// kept in declared order because resolution picks the first rule whose
// Rows contains the row index.  A row matched by no rule falls back to
// the first declared rule; that fallback is load-bearing and must not be
// turned into an error.
type SeatTypeRule struct {
	Type  string `json:"type"`  // category key, e.g. "regular"
	Name  string `json:"name"`  // display name, e.g. "Regular"
	Price int64  `json:"price"` // price per seat in whole currency units
	Rows  []int  `json:"rows"`  // row indices this rule covers
}

// Covers reports whether the rule applies to the given row index.
func (r SeatTypeRule) Covers(row int) bool {
	for _, idx := range r.Rows {
		if idx == row {
			return true
		}
	}
	return false
}

// Seat status values.  Booked is terminal within a session: once a seat
// is booked it can never become selectable again without a new session.
const (
	SeatAvailable = "available"
	SeatBooked    = "booked"
)

// Seat is one bookable unit in the grid.  Identity is deterministic:
// row letter (A=0, B=1, …) followed by the 1-based column number, so
// row 2 column 4 is "C4".
type Seat struct {
	ID       string `json:"id"`
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	Type     string `json:"type"`
	Price    int64  `json:"price"`
	Status   string `json:"status"`
	Selected bool   `json:"selected"`
}
