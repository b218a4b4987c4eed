// Package ledger is the durable, append-at-head store of booking
// receipts.  The whole record sequence is serialized as one JSON
// document under a fixed namespace in a key/value backend and rewritten
// in full on every mutation, so a reader always observes either the old
// sequence or the new one, never a mix.  The ledger is the only state
// that outlives a browsing session.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/moviebook/movie-seat-booking/internal/model"
)

// Namespace is the fixed key the record sequence is persisted under.
// It matches the schema of previously written ledgers and must not
// change.
const Namespace = "movieBookings"

// ErrDuplicateID is returned when an insert would reuse an existing
// bookingId.  The caller must retry with a fresh ID; the ledger never
// silently overwrites a receipt.
var ErrDuplicateID = errors.New("ledger: bookingId already exists")

// Store is the persistence backend.  Load returns the raw serialized
// sequence (nil when nothing has been written yet) and Save replaces it
// atomically.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// Ledger exposes insert, list, delete and query over a Store.  It owns
// the persisted sequence exclusively; nothing else writes the
// namespace.
type Ledger struct {
	store Store
}

// New returns a Ledger backed by the given store.
func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// load reads and decodes the persisted sequence.  A corrupt payload is
// logged and treated as an empty ledger: booking history is not
// safety-critical and must never take the application down.
func (l *Ledger) load(ctx context.Context) ([]model.BookingRecord, error) {
	payload, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return []model.BookingRecord{}, nil
	}
	var records []model.BookingRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		log.Printf("ledger: persisted data is corrupt, starting empty: %v", err)
		return []model.BookingRecord{}, nil
	}
	return records, nil
}

// save serializes and persists the full sequence.
func (l *Ledger) save(ctx context.Context, records []model.BookingRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, payload)
}

// Insert prepends a record to the persisted sequence.  It fails with
// ErrDuplicateID when the bookingId is already present.
func (l *Ledger) Insert(ctx context.Context, rec model.BookingRecord) error {
	records, err := l.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range records {
		if existing.BookingID == rec.BookingID {
			return ErrDuplicateID
		}
	}
	records = append([]model.BookingRecord{rec}, records...)
	return l.save(ctx, records)
}

// List returns the current persisted sequence, newest first.  An empty
// ledger yields an empty slice, not an error.
func (l *Ledger) List(ctx context.Context) ([]model.BookingRecord, error) {
	return l.load(ctx)
}

// Get returns the record with the given bookingId.
func (l *Ledger) Get(ctx context.Context, bookingID string) (model.BookingRecord, bool, error) {
	records, err := l.load(ctx)
	if err != nil {
		return model.BookingRecord{}, false, err
	}
	for _, rec := range records {
		if rec.BookingID == bookingID {
			return rec, true, nil
		}
	}
	return model.BookingRecord{}, false, nil
}

// Delete removes the record with the given bookingId, leaving the order
// of the remaining records unchanged.  Deleting an unknown ID is a
// no-op, not an error.
func (l *Ledger) Delete(ctx context.Context, bookingID string) error {
	records, err := l.load(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.BookingID == bookingID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return nil
	}
	return l.save(ctx, kept)
}
