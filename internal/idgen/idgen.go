// Package idgen mints ids for schedule entities (trips, days, items).
// Ids carry an entity prefix ("trip-...", "day-...", "item-...") so a raw id
// in a log line or URL is self-describing.
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator mints ids that are unique within a process lifetime.
// The schedule store and share codec take a Generator rather than calling a
// package-level function so tests can substitute a deterministic one.
type Generator interface {
	// NewID returns a fresh id carrying the given entity prefix.
	NewID(prefix string) string
}

// UUID is the production Generator. Each id is the prefix plus a random
// UUIDv4, e.g. "item-9f1c2ad4-...". Uniqueness holds across processes too,
// which is stronger than required but free.
type UUID struct{}

// NewID implements Generator.
func (UUID) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Sequential is a deterministic Generator for tests: "trip-1", "day-2", ...
// The counter is shared across prefixes so every id is unique regardless of
// entity kind. Safe for concurrent use.
type Sequential struct {
	mu sync.Mutex
	n  int
}

// NewID implements Generator.
func (s *Sequential) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// compile-time checks
var (
	_ Generator = UUID{}
	_ Generator = (*Sequential)(nil)
)
