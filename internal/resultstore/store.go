// Package resultstore is the process-local cache of finished recognition
// results. It owns identifier allocation; the durable records store is a
// separate concern.
package resultstore

import (
	"sync"
	"time"

	"github.com/seadex/seadex/internal/recognition"
)

// StoredResult wraps a recognition record with its process-unique identifier
// and timestamps.
type StoredResult struct {
	ID        int64              `json:"id"`
	Record    recognition.Record `json:"record"`
	ImageURL  string             `json:"imageUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Store holds recognition results by identifier. Identifiers are strictly
// increasing and never reused within the process lifetime; concurrent Puts
// never hand out duplicates or drop inserts.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	results map[int64]StoredResult
}

// New creates an empty result store. The first allocated identifier is 1.
func New() *Store {
	return &Store{
		nextID:  1,
		results: make(map[int64]StoredResult),
	}
}

// Put stores a record under a freshly allocated identifier and returns it.
func (s *Store) Put(record recognition.Record, imageURL string) int64 {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.results[id] = StoredResult{
		ID:        id,
		Record:    record,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id
}

// Get retrieves a stored result by identifier. An identifier that was never
// stored reports false; it is not conflated with an unrecognized species.
func (s *Store) Get(id int64) (StoredResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[id]
	return result, ok
}

// Len returns the number of stored results.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
