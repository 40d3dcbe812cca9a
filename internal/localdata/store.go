// ABOUTME: Badger-backed local KV for session credentials and offline snapshots.
// ABOUTME: Holds the two durable session keys whose removal is the complete logout contract.
package localdata

import (
	"errors"
	"fmt"
	"os"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	// KeyToken and KeyUser are the two durable session keys. Clearing both
	// is the complete logout contract.
	KeyToken = "session:token"
	KeyUser  = "session:user"

	// KeyDeviceID holds the ULID identifying this install.
	KeyDeviceID = "device:id"

	// SnapshotPrefix namespaces last-known-state snapshots by profile ID.
	SnapshotPrefix = "snapshot:"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("localdata: key not found")

// Store is a small durable KV on badger. One Store per process; badger
// holds an exclusive dir lock.
type Store struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates the store in the given directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the value for key, or ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value under key.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}
