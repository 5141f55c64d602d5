// ABOUTME: Record store: typed JSON records over a pluggable key-value backend.
// ABOUTME: Serializes read-modify-write per key and validates on both read and write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned by a Backend when a key is absent.
	ErrNotFound = errors.New("key not found")
	// ErrStorageUnavailable wraps every backend failure.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// SchemaError reports persisted data that failed to decode or validate.
type SchemaError struct {
	Key string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid record %q: %v", e.Key, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Backend is the raw key-value layer under a Store.
type Backend interface {
	// Get returns ErrNotFound when key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// validator is implemented by every record type.
type validator interface {
	Validate() error
}

// Store reads and writes whole records by key.
type Store struct {
	backend Backend
	locks   sync.Map
	log     *logrus.Entry
}

// New wraps backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     logrus.WithField("component", "store"),
	}
}

func (s *Store) lock(key string) func() {
	v, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%s %q: %w: %w", op, key, ErrStorageUnavailable, err)
}

// Read decodes the record at key into dst. An absent key reports false and
// leaves dst untouched.
func (s *Store) Read(key string, dst any) (bool, error) {
	data, err := s.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		s.log.WithFields(logrus.Fields{"op": "read", "key": key}).Debug("absent")
		return false, nil
	}
	if err != nil {
		return false, unavailable("read", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, &SchemaError{Key: key, Err: err}
	}
	if v, ok := dst.(validator); ok {
		if err := v.Validate(); err != nil {
			return false, &SchemaError{Key: key, Err: err}
		}
	}
	s.log.WithFields(logrus.Fields{"op": "read", "key": key, "bytes": len(data)}).Debug("ok")
	return true, nil
}

// Write validates and stores v under key, replacing any previous value.
func (s *Store) Write(key string, v any) error {
	unlock := s.lock(key)
	defer unlock()
	return s.write(key, v)
}

func (s *Store) write(key string, v any) error {
	if val, ok := v.(validator); ok {
		if err := val.Validate(); err != nil {
			return err
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return unavailable("write", key, err)
	}
	s.log.WithFields(logrus.Fields{"op": "write", "key": key, "bytes": len(data)}).Debug("ok")
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	unlock := s.lock(key)
	defer unlock()
	if err := s.backend.Delete(key); err != nil && !errors.Is(err, ErrNotFound) {
		return unavailable("delete", key, err)
	}
	s.log.WithFields(logrus.Fields{"op": "delete", "key": key}).Debug("ok")
	return nil
}

// Keys lists stored keys in sorted order.
func (s *Store) Keys() ([]string, error) {
	keys, err := s.backend.Keys()
	if err != nil {
		return nil, unavailable("list", "*", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Update runs fn on the current record at key (zero value when absent) and
// writes the result back. The whole cycle holds the key's lock. An error from
// fn aborts without writing.
func Update[T any](s *Store, key string, fn func(*T) error) error {
	unlock := s.lock(key)
	defer unlock()

	var rec T
	if _, err := s.Read(key, &rec); err != nil {
		return err
	}
	if err := fn(&rec); err != nil {
		return err
	}
	return s.write(key, rec)
}

// Append pushes item onto the sequence stored at key.
func Append[S ~[]E, E any](s *Store, key string, item E) error {
	return Update(s, key, func(seq *S) error {
		*seq = append(*seq, item)
		return nil
	})
}

// ErrNoChange can be returned from an Update callback to skip the write.
var ErrNoChange = errors.New("no change")

// UpdateIfChanged is Update, but treats ErrNoChange from fn as success
// without writing.
func UpdateIfChanged[T any](s *Store, key string, fn func(*T) error) error {
	err := Update(s, key, fn)
	if errors.Is(err, ErrNoChange) {
		return nil
	}
	return err
}
