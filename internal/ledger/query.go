package ledger

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// Status filter values.  Upcoming and Past partition records by
// comparing the record's booking date against "now" at query time.
const (
	StatusAll      = "all"
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
)

// Sort orders.  All sorts are stable so records with equal keys keep
// their ledger order.
const (
	SortRecentFirst = "recent"
	SortOldestFirst = "oldest"
	SortPriceDesc   = "price-high"
	SortPriceAsc    = "price-low"
)

// Query describes a filtered, sorted view over the ledger.  Zero values
// mean "no search", "all statuses" and "most recent first".
type Query struct {
	Search string // case-insensitive substring match on movieTitle
	Status string
	SortBy string
}

// Query filters the persisted sequence and then sorts it.  A record
// whose booking date cannot be parsed counts as Past; that is a defined
// fallback, not an error.
func (l *Ledger) Query(ctx context.Context, q Query) ([]model.BookingRecord, error) {
	records, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	result := make([]model.BookingRecord, 0, len(records))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, rec := range records {
		if search != "" && !strings.Contains(strings.ToLower(rec.MovieTitle), search) {
			continue
		}
		switch q.Status {
		case StatusUpcoming:
			if !isUpcoming(rec, now) {
				continue
			}
		case StatusPast:
			if isUpcoming(rec, now) {
				continue
			}
		}
		result = append(result, rec)
	}

	switch q.SortBy {
	case SortOldestFirst:
		sort.SliceStable(result, func(i, j int) bool {
			return bookingTime(result[i]).Before(bookingTime(result[j]))
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalPrice > result[j].TotalPrice
		})
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalPrice < result[j].TotalPrice
		})
	default: // SortRecentFirst
		sort.SliceStable(result, func(i, j int) bool {
			return bookingTime(result[j]).Before(bookingTime(result[i]))
		})
	}
	return result, nil
}

// isUpcoming reports whether the record's booking date is now or later.
// Unparsable dates land in Past.
func isUpcoming(rec model.BookingRecord, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, rec.BookingDate)
	if err != nil {
		return false
	}
	return !t.Before(now)
}

// bookingTime parses the record timestamp for sorting; unparsable dates
// sort as the zero time, i.e. before everything else.
func bookingTime(rec model.BookingRecord) time.Time {
	t, err := time.Parse(time.RFC3339, rec.BookingDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
