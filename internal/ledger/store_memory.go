package ledger

import (
	"context"
	"sync"
)

// MemoryStore keeps the serialized sequence in process memory.  It is
// used in tests and as the LEDGER_BACKEND=memory development mode where
// history is allowed to vanish on restart.
type MemoryStore struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Load returns the last saved payload, nil when nothing was written.
func (m *MemoryStore) Load(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.payload == nil {
		return nil, nil
	}
	out := make([]byte, len(m.payload))
	copy(out, m.payload)
	return out, nil
}

// Save replaces the stored payload.
func (m *MemoryStore) Save(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payload = make([]byte, len(payload))
	copy(m.payload, payload)
	return nil
}
