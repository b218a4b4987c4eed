package ledger

import (
	"context"
	"database/sql"
	"errors"
)

// MySQLStore persists the serialized sequence in a one-row key/value
// table.  REPLACE INTO rewrites the row in a single statement, so a
// concurrent reader sees either the previous payload or the new one.
// The relational engine is used purely as a durable KV namespace; there
// is deliberately no per-booking schema because the ledger contract is
// a whole-sequence rewrite.
type MySQLStore struct {
	db  *sql.DB
	key string
}

// NewMySQLStore returns a store writing under the given namespace key.
// An empty key falls back to the ledger Namespace.
func NewMySQLStore(db *sql.DB, key string) *MySQLStore {
	if key == "" {
		key = Namespace
	}
	return &MySQLStore{db: db, key: key}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (m *MySQLStore) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS booking_ledger (
        namespace  VARCHAR(64) NOT NULL PRIMARY KEY,
        payload    MEDIUMBLOB  NOT NULL,
        updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )`
	_, err := m.db.ExecContext(ctx, q)
	return err
}

// Load fetches the stored payload.  A missing row means an empty
// ledger, not an error.
func (m *MySQLStore) Load(ctx context.Context) ([]byte, error) {
	const q = `SELECT payload FROM booking_ledger WHERE namespace = ?`
	var payload []byte
	err := m.db.QueryRowContext(ctx, q, m.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Save replaces the stored payload for the namespace.
func (m *MySQLStore) Save(ctx context.Context, payload []byte) error {
	const q = `REPLACE INTO booking_ledger (namespace, payload) VALUES (?, ?)`
	_, err := m.db.ExecContext(ctx, q, m.key, payload)
	return err
}
