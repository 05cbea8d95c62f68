// Package store provides an in-memory listing store for testing and seeding.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dualahq/duala/internal/models"
)

// MemoryStore is an in-memory ListingStore. Suitable for tests and small
// datasets where no database file is wanted. All methods return copies so
// callers can never mutate the stored records.
type MemoryStore struct {
	listings map[int64]*models.Listing
	nextID   int64
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty in-memory listing store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[int64]*models.Listing),
		nextID:   1,
	}
}

// Create inserts a listing and fills in its assigned id and timestamps.
func (m *MemoryStore) Create(ctx context.Context, listing *models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	listing.ID = m.nextID
	listing.CreatedAt = now
	listing.LastUpdated = now
	m.nextID++

	stored := *listing
	m.listings[stored.ID] = &stored
	return nil
}

// Get returns a copy of the listing with the given id.
func (m *MemoryStore) Get(ctx context.Context, id int64) (*models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	listing, ok := m.listings[id]
	if !ok {
		return nil, fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	out := *listing
	return &out, nil
}

// Update rewrites an existing listing and bumps its lastUpdated timestamp.
// The stored creation time and view count are preserved.
func (m *MemoryStore) Update(ctx context.Context, listing *models.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.listings[listing.ID]
	if !ok {
		return fmt.Errorf("listing %d: %w", listing.ID, ErrNotFound)
	}
	listing.CreatedAt = current.CreatedAt
	listing.ViewCount = current.ViewCount
	listing.LastUpdated = time.Now()

	stored := *listing
	m.listings[stored.ID] = &stored
	return nil
}

// Delete removes a listing by id.
func (m *MemoryStore) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.listings[id]; !ok {
		return fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	delete(m.listings, id)
	return nil
}

// All returns copies of every listing ordered by id descending.
func (m *MemoryStore) All(ctx context.Context) ([]*models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(*models.Listing) bool { return true }), nil
}

// AllAvailable returns copies of every available listing ordered by id descending.
func (m *MemoryStore) AllAvailable(ctx context.Context) ([]*models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(l *models.Listing) bool { return l.Available }), nil
}

// RecordView increments a listing's view counter.
func (m *MemoryStore) RecordView(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	listing, ok := m.listings[id]
	if !ok {
		return fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	listing.ViewCount++
	return nil
}

// Count returns the total number of listings.
func (m *MemoryStore) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.listings)), nil
}

// CountAvailable returns the number of available listings.
func (m *MemoryStore) CountAvailable(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, l := range m.listings {
		if l.Available {
			n++
		}
	}
	return n, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// collect copies matching listings in id-descending order. Callers must hold
// at least a read lock.
func (m *MemoryStore) collect(keep func(*models.Listing) bool) []*models.Listing {
	out := make([]*models.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		if keep(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
