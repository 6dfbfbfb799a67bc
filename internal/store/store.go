package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"wallcraft/internal/domain"
)

// Bucket names
var (
	bucketScopes = []byte("scopes")
	bucketPrefs  = []byte("preferences")
	bucketState  = []byte("state")
)

// Store persists scope caches, preferences and session state in BoltDB.
// Values are JSON-encoded. A corrupt or missing value is treated as
// absent, never as a fatal error; every reader has a documented default.
//
// One invocation opens one Store; there is no cross-process locking beyond
// bolt's own file lock, and the last writer wins.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// Open opens (creating if needed) the store at dir. An empty dir gives a
// memory-only store with no persistence, which the tests use.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "wallcraft.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketScopes, bucketPrefs, bucketState} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *Store) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	// Update memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *Store) delete(bucket []byte, key string) {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b != nil {
			b.Delete([]byte(key))
		}
		return nil
	})
}

// clearBucket removes every key of one bucket, from the memory cache and
// from disk.
func (s *Store) clearBucket(bucket []byte) {
	s.mu.Lock()
	prefix := string(bucket) + ":"
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			delete(s.cache, k)
		}
	}
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// === Scope cache ===

// scopeKey partitions cached identifier lists by scope and resolution.
func scopeKey(scope domain.Scope, res domain.Resolution) string {
	return scope.String() + "|" + res.String()
}

func (s *Store) GetScopeIDs(scope domain.Scope, res domain.Resolution) ([]domain.WallpaperID, bool) {
	var ids []domain.WallpaperID
	ok := s.get(bucketScopes, scopeKey(scope, res), &ids)
	return ids, ok
}

func (s *Store) SaveScopeIDs(scope domain.Scope, res domain.Resolution, ids []domain.WallpaperID) error {
	if ids == nil {
		ids = []domain.WallpaperID{} // cache "nothing found" too
	}
	return s.set(bucketScopes, scopeKey(scope, res), ids)
}

func (s *Store) InvalidateScope(scope domain.Scope, res domain.Resolution) {
	s.delete(bucketScopes, scopeKey(scope, res))
}

// InvalidateScopes drops every cached scope. Used by the update command
// and whenever the minimum-score filter changes, since cached lists are
// filter-dependent.
func (s *Store) InvalidateScopes() {
	s.clearBucket(bucketScopes)
}

// === Preferences ===

// GetPreferences returns the persisted preferences, or an empty default
// when nothing was saved yet or the value is unreadable.
func (s *Store) GetPreferences() *domain.Preferences {
	prefs := domain.NewPreferences()
	s.get(bucketPrefs, "prefs", prefs)
	if prefs.TagVotes == nil {
		prefs.TagVotes = make(map[string]int)
	}
	return prefs
}

func (s *Store) SavePreferences(prefs *domain.Preferences) error {
	return s.set(bucketPrefs, "prefs", prefs)
}

// === Session state ===

func (s *Store) GetState() *domain.State {
	state := &domain.State{}
	s.get(bucketState, "state", state)
	return state
}

func (s *Store) SaveState(state *domain.State) error {
	return s.set(bucketState, "state", state)
}
