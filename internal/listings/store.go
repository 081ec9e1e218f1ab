package listings

import (
	"context"
	"sync"
	"time"

	"github.com/yeoyeo/realty-api/internal/logger"
	"github.com/yeoyeo/realty-api/internal/models"
)

// Store holds the current listing snapshot. Snapshots are replaced
// wholesale on refresh; no per-listing identity survives a refresh.
// Overlapping refreshes are tolerated; last write wins.
type Store struct {
	mu        sync.RWMutex
	listings  []models.Listing
	source    string
	updatedAt time.Time

	resolver *Resolver
	log      *logger.Logger
}

// NewStore creates a Store that refreshes through the given resolver.
func NewStore(resolver *Resolver, log *logger.Logger) *Store {
	return &Store{
		resolver: resolver,
		log:      log.WithComponent("listings_store"),
	}
}

// Refresh resolves a fresh listing set and swaps it in.
func (s *Store) Refresh(ctx context.Context) {
	listings, source := s.resolver.FetchListings(ctx)

	s.mu.Lock()
	s.listings = listings
	s.source = source
	s.updatedAt = time.Now()
	s.mu.Unlock()

	s.log.Info("Listing snapshot refreshed", map[string]interface{}{
		"count":  len(listings),
		"source": source,
	})
}

// Snapshot returns a copy of the current listings plus snapshot
// metadata. Callers may filter and sort the copy freely.
func (s *Store) Snapshot() ([]models.Listing, string, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out, s.source, s.updatedAt
}

// Ready reports whether at least one refresh has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.updatedAt.IsZero()
}
