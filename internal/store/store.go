package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lmenard/marquee/internal/domain"
)

// Bucket names
var (
	bucketGenres  = []byte("genres")
	bucketDetails = []byte("details")
)

// Cache lifetimes. Genres are near-static; details change rarely.
const (
	genreTTL   = 24 * time.Hour
	detailsTTL = time.Hour
)

// envelope wraps a cached value with its write time for TTL checks
type envelope struct {
	SavedAt time.Time       `json:"saved_at"`
	Data    json.RawMessage `json:"data"`
}

// CatalogStore caches slow-changing catalog data (the genre list,
// movie details) in BoltDB with in-memory promotion. All methods are
// best-effort: a cache miss or storage failure just means a refetch.
type CatalogStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewCatalogStore opens (or creates) the cache database under dir.
// An empty dir selects memory-only mode with no persistence.
func NewCatalogStore(dir string) (*CatalogStore, error) {
	if dir == "" {
		return &CatalogStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "marquee.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketGenres, bucketDetails} {
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

	return &CatalogStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

// get loads a value and reports whether it exists and is younger than
// ttl. Expired entries are still decoded so callers can fall back to
// the stale copy when a refetch fails.
func (s *CatalogStore) get(bucket []byte, key string, ttl time.Duration, dest interface{}) (found, fresh bool) {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	data, ok := s.cache[cacheKey]
	s.mu.RUnlock()

	if !ok {
		if s.db == nil {
			return false, false
		}

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
			return false, false
		}

		// Promote to memory cache
		s.mu.Lock()
		s.cache[cacheKey] = data
		s.mu.Unlock()
	}

	var env envelope
	if json.Unmarshal(data, &env) != nil {
		return false, false
	}
	if json.Unmarshal(env.Data, dest) != nil {
		return false, false
	}
	return true, time.Since(env.SavedAt) < ttl
}

func (s *CatalogStore) set(bucket []byte, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{SavedAt: time.Now(), Data: raw})
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

// === Genres ===

// GetGenres returns the cached genre list. fresh is false when the
// entry is past its TTL and should be refetched.
func (s *CatalogStore) GetGenres() (genres []domain.Genre, found, fresh bool) {
	found, fresh = s.get(bucketGenres, "list", genreTTL, &genres)
	return genres, found, fresh
}

// SaveGenres stores the genre list
func (s *CatalogStore) SaveGenres(genres []domain.Genre) error {
	return s.set(bucketGenres, "list", genres)
}

// === Movie details ===

// GetDetails returns cached details for one movie
func (s *CatalogStore) GetDetails(movieID int) (details domain.MovieDetails, found, fresh bool) {
	found, fresh = s.get(bucketDetails, strconv.Itoa(movieID), detailsTTL, &details)
	return details, found, fresh
}

// SaveDetails stores details for one movie
func (s *CatalogStore) SaveDetails(details domain.MovieDetails) error {
	return s.set(bucketDetails, strconv.Itoa(details.ID), details)
}
