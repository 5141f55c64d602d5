// ABOUTME: Charm KV client used as a synced record-store backend.
// ABOUTME: Writes push to Charm Cloud when auto-sync is on; read-only mode is detected.
package charm

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fitness/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDBName is the Charm KV database holding fitness records.
	DefaultDBName = "fitness"
	// DefaultHost is used when CHARM_HOST is not already set.
	DefaultHost = "charm.2389.dev"
)

// ErrReadOnly is returned for writes while another process holds the lock.
var ErrReadOnly = errors.New("cannot write: database is locked by another process (MCP server?)")

// kvStore is the subset of *kv.KV the client uses.
type kvStore interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Keys() ([][]byte, error)
	Sync() error
	Reset() error
	IsReadOnly() bool
	Close() error
}

// Client implements store.Backend on top of Charm KV.
type Client struct {
	kv       kvStore
	autoSync bool
	mu       sync.RWMutex
	log      *logrus.Entry
}

var _ store.Backend = (*Client)(nil)

// Open opens the named Charm KV database and pulls remote changes.
func Open(name string) (*Client, error) {
	if os.Getenv("CHARM_HOST") == "" {
		if err := os.Setenv("CHARM_HOST", DefaultHost); err != nil {
			return nil, fmt.Errorf("set charm host: %w", err)
		}
	}
	db, err := kv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}
	c := newClient(db)
	if !db.IsReadOnly() {
		if err := db.Sync(); err != nil {
			c.log.WithError(err).Warn("initial sync failed")
		}
	}
	return c, nil
}

func newClient(db kvStore) *Client {
	return &Client{
		kv:       db,
		autoSync: true,
		log:      logrus.WithField("component", "charm"),
	}
}

func (c *Client) Get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, store.ErrNotFound
	}
	return v, err
}

func (c *Client) Set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Set([]byte(key), value); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

func (c *Client) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return ErrReadOnly
	}
	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	c.syncIfEnabled()
	return nil
}

func (c *Client) Keys() ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = string(k)
	}
	return keys, nil
}

// Close closes the KV database.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// IsReadOnly reports whether another process holds the database lock.
func (c *Client) IsReadOnly() bool {
	return c.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud. A no-op when read-only.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// SetAutoSync enables or disables sync after every write.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// Reset wipes local data and rebuilds it from Charm Cloud.
func (c *Client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}

// Wipe deletes every key locally and, with auto-sync, remotely.
func (c *Client) Wipe() (int, error) {
	keys, err := c.Keys()
	if err != nil {
		return 0, fmt.Errorf("list keys: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv.IsReadOnly() {
		return 0, ErrReadOnly
	}
	for _, k := range keys {
		if err := c.kv.Delete([]byte(k)); err != nil {
			return 0, fmt.Errorf("delete %s: %w", k, err)
		}
	}
	c.syncIfEnabled()
	return len(keys), nil
}

// ID returns the Charm user ID of the linked account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// syncIfEnabled must be called with mu held.
func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		if err := c.kv.Sync(); err != nil {
			c.log.WithError(err).Warn("sync after write failed")
		}
	}
}
