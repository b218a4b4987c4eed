package ledger

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore persists the serialized sequence as a JSON file.  Writes go
// through a temp file followed by a rename, so an interrupted write
// leaves the previous file intact rather than a truncated mix.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to the given path.  An empty
// path defaults to <user config dir>/movie-seat-booking/<Namespace>.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "movie-seat-booking", Namespace+".json")
	}
	return &FileStore{path: path}, nil
}

// Load reads the stored payload.  A missing file means an empty ledger,
// not an error.
func (f *FileStore) Load(ctx context.Context) ([]byte, error) {
	payload, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Save replaces the stored payload atomically.
func (f *FileStore) Save(ctx context.Context, payload []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
