// Package store defines the persistence interface for service listings.
package store

import (
	"context"
	"errors"

	"github.com/dualahq/duala/internal/models"
)

// ErrNotFound is returned when a listing id does not exist. Callers match it
// with errors.Is to distinguish missing records from storage failures.
var ErrNotFound = errors.New("listing not found")

// ListingStore defines listing persistence operations.
type ListingStore interface {
	// Listing operations
	Create(ctx context.Context, listing *models.Listing) error
	Get(ctx context.Context, id int64) (*models.Listing, error)
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id int64) error
	All(ctx context.Context) ([]*models.Listing, error)
	AllAvailable(ctx context.Context) ([]*models.Listing, error)

	// RecordView bumps a listing's view counter.
	RecordView(ctx context.Context, id int64) error

	// Stats
	Count(ctx context.Context) (int64, error)
	CountAvailable(ctx context.Context) (int64, error)

	Close() error
}
