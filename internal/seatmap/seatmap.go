// Package seatmap builds the static seat grid for a browsing session
// and resolves rows to price categories.  Generation is a pure function:
// the same layout, rules and booked-seat set always produce an identical
// grid.  The grid is generated exactly once per session; seat status
// changes only through session operations afterwards.
package seatmap

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// maxRows is bounded by the single-letter row labels (A through Z).
const maxRows = 26

// ErrNoRules is returned when a grid is requested with an empty rule
// set.  The first-rule fallback has nothing to fall back to.
var ErrNoRules = errors.New("seatmap: at least one seat type rule is required")

// SeatID derives the deterministic seat identity from zero-based row
// and column indices: row letter plus 1-based column number, so
// (0,0) -> "A1" and (2,4) -> "C5".
func SeatID(row, column int) string {
	return string(rune('A'+row)) + strconv.Itoa(column+1)
}

// ResolveType maps a row index to its seat type rule.  Rules are
// evaluated in declared order and the first match wins.  When no rule
// covers the row, the first declared rule is used as a total fallback.
// The same function feeds grid generation and legend rendering, so the
// two can never disagree about a row's category or price.
func ResolveType(row int, rules []model.SeatTypeRule) model.SeatTypeRule {
	for _, rule := range rules {
		if rule.Covers(row) {
			return rule
		}
	}
	return rules[0]
}

// Validate checks a layout and rule set before any grid is generated.
func Validate(layout model.Layout, rules []model.SeatTypeRule) error {
	if layout.Rows <= 0 || layout.Rows > maxRows {
		return fmt.Errorf("seatmap: rows must be between 1 and %d, got %d", maxRows, layout.Rows)
	}
	if layout.SeatsPerRow <= 0 {
		return fmt.Errorf("seatmap: seats_per_row must be positive, got %d", layout.SeatsPerRow)
	}
	if layout.AislePosition < 0 || layout.AislePosition > layout.SeatsPerRow {
		return fmt.Errorf("seatmap: aisle_position must be between 0 and %d, got %d", layout.SeatsPerRow, layout.AislePosition)
	}
	if len(rules) == 0 {
		return ErrNoRules
	}
	for _, rule := range rules {
		if rule.Price <= 0 {
			return fmt.Errorf("seatmap: rule %q must have a positive price", rule.Type)
		}
	}
	return nil
}

// Generate builds the full seat grid: layout.Rows rows of
// layout.SeatsPerRow seats each.  Every seat in a row shares the row's
// resolved type and price.  A seat starts out Booked exactly when its
// derived ID appears in bookedIDs, otherwise Available and unselected.
func Generate(layout model.Layout, rules []model.SeatTypeRule, bookedIDs []string) ([][]model.Seat, error) {
	if err := Validate(layout, rules); err != nil {
		return nil, err
	}
	booked := make(map[string]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}
	grid := make([][]model.Seat, layout.Rows)
	for row := 0; row < layout.Rows; row++ {
		rule := ResolveType(row, rules)
		seats := make([]model.Seat, layout.SeatsPerRow)
		for col := 0; col < layout.SeatsPerRow; col++ {
			id := SeatID(row, col)
			status := model.SeatAvailable
			if _, ok := booked[id]; ok {
				status = model.SeatBooked
			}
			seats[col] = model.Seat{
				ID:     id,
				Row:    row,
				Column: col,
				Type:   rule.Type,
				Price:  rule.Price,
				Status: status,
			}
		}
		grid[row] = seats
	}
	return grid, nil
}
