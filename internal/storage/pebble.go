package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/pebble"
)

// Pebble is the durable Store implementation, backed by an embedded pebble
// database on local disk.
type Pebble struct {
	db *pebble.DB
}

// OpenPebble opens (or creates) the state database at path.
func OpenPebble(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("opening state db at %s: %w", path, err)
	}
	return &Pebble{db: db}, nil
}

func (p *Pebble) Load(key string, out any) (bool, error) {
	val, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}
	defer closer.Close()

	if err := json.Unmarshal(val, out); err != nil {
		// Malformed state reads as empty; the app starts fresh.
		slog.Warn("discarding malformed state entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (p *Pebble) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := p.db.Set([]byte(key), data, pebble.Sync); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

func (p *Pebble) Close() error {
	return p.db.Close()
}
