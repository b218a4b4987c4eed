package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

func record(id, title string, total int64, bookedAt time.Time) model.BookingRecord {
	return model.BookingRecord{
		BookingID:   id,
		MovieTitle:  title,
		Seats:       []string{"A1", "A2"},
		TotalPrice:  total,
		BookingDate: bookedAt.UTC().Format(time.RFC3339),
	}
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())

	records, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records, "empty ledger is valid, not an error")

	now := time.Now()
	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, now)))
	require.NoError(t, l.Insert(ctx, record("2", "Dune", 550, now)))

	records, err = l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0].BookingID, "newest insert must be at the head")
	assert.Equal(t, "1", records[1].BookingID)
}

func TestInsert_DuplicateID(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	now := time.Now()

	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, now)))
	err := l.Insert(ctx, record("1", "Dune", 550, now))
	assert.ErrorIs(t, err, ErrDuplicateID)

	records, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Inception", records[0].MovieTitle, "duplicate insert must never overwrite")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	now := time.Now()
	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, now)))
	require.NoError(t, l.Insert(ctx, record("2", "Dune", 550, now)))
	require.NoError(t, l.Insert(ctx, record("3", "Heat", 150, now)))

	require.NoError(t, l.Delete(ctx, "2"))

	records, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].BookingID)
	assert.Equal(t, "1", records[1].BookingID)

	// Unknown IDs are a no-op.
	require.NoError(t, l.Delete(ctx, "nope"))
	records, err = l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, time.Now())))

	rec, ok, err := l.Get(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Inception", rec.MovieTitle)

	_, ok, err = l.Get(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuery_StatusPartition(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	yesterday := time.Now().Add(-24 * time.Hour)
	nextWeek := time.Now().Add(7 * 24 * time.Hour)
	require.NoError(t, l.Insert(ctx, record("old", "Inception", 300, yesterday)))
	require.NoError(t, l.Insert(ctx, record("new", "Dune", 550, nextWeek)))

	upcoming, err := l.Query(ctx, Query{Status: StatusUpcoming})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "new", upcoming[0].BookingID)

	past, err := l.Query(ctx, Query{Status: StatusPast})
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "old", past[0].BookingID)

	all, err := l.Query(ctx, Query{Status: StatusAll})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestQuery_UnparsableDateIsPast(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	rec := record("bad", "Inception", 300, time.Now().Add(48*time.Hour))
	rec.BookingDate = "not-a-date"
	require.NoError(t, l.Insert(ctx, rec))

	upcoming, err := l.Query(ctx, Query{Status: StatusUpcoming})
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	past, err := l.Query(ctx, Query{Status: StatusPast})
	require.NoError(t, err)
	assert.Len(t, past, 1)
}

func TestQuery_SearchAndSort(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	base := time.Now()
	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, base.Add(-3*time.Hour))))
	require.NoError(t, l.Insert(ctx, record("2", "Dune Part Two", 550, base.Add(-2*time.Hour))))
	require.NoError(t, l.Insert(ctx, record("3", "Dune", 150, base.Add(-1*time.Hour))))

	dune, err := l.Query(ctx, Query{Search: "dune"})
	require.NoError(t, err)
	require.Len(t, dune, 2)
	assert.Equal(t, "3", dune[0].BookingID, "default sort is most recent first")

	oldest, err := l.Query(ctx, Query{SortBy: SortOldestFirst})
	require.NoError(t, err)
	assert.Equal(t, "1", oldest[0].BookingID)

	priceHigh, err := l.Query(ctx, Query{SortBy: SortPriceDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(550), priceHigh[0].TotalPrice)

	priceLow, err := l.Query(ctx, Query{SortBy: SortPriceAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(150), priceLow[0].TotalPrice)
}

func TestQuery_SortStableForEqualKeys(t *testing.T) {
	ctx := context.Background()
	l := New(NewMemoryStore())
	now := time.Now()
	require.NoError(t, l.Insert(ctx, record("1", "Dune", 300, now)))
	require.NoError(t, l.Insert(ctx, record("2", "Heat", 300, now.Add(time.Hour))))
	require.NoError(t, l.Insert(ctx, record("3", "Alien", 300, now.Add(2*time.Hour))))

	byPrice, err := l.Query(ctx, Query{SortBy: SortPriceDesc})
	require.NoError(t, err)
	require.Len(t, byPrice, 3)
	// Equal prices keep ledger order (newest first).
	assert.Equal(t, "3", byPrice[0].BookingID)
	assert.Equal(t, "2", byPrice[1].BookingID)
	assert.Equal(t, "1", byPrice[2].BookingID)
}

func TestCorruptPayloadTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, []byte("{definitely not json")))

	l := New(store)
	records, err := l.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	// The ledger stays writable after recovering from corruption.
	require.NoError(t, l.Insert(ctx, record("1", "Inception", 300, time.Now())))
	records, err = l.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileStore_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookings.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	l := New(store)
	want := record("1699999999999", "Inception", 550, time.Now())
	want.ShowTime = "9:30 PM"
	want.Date = "2026-09-04"
	require.NoError(t, l.Insert(ctx, want))

	// Simulate a restart by building a fresh store over the same file.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	records, err := New(reopened).List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, want, records[0])
}
