// Package store provides the SQLite implementation of the ListingStore interface.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dualahq/duala/internal/models"
)

// SQLiteStore implements ListingStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS listings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		service_type TEXT NOT NULL,
		county TEXT NOT NULL,
		city TEXT NOT NULL,
		community TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		detailed_description TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		features TEXT NOT NULL DEFAULT '',
		available INTEGER NOT NULL DEFAULT 1,
		view_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_listings_available ON listings(available);
	CREATE INDEX IF NOT EXISTS idx_listings_county ON listings(county);
	CREATE INDEX IF NOT EXISTS idx_listings_service_type ON listings(service_type);
	`
	_, err := db.Exec(schema)
	return err
}

const listingColumns = `id, name, service_type, county, city, community,
	 description, detailed_description, tags, features, available, view_count,
	 created_at, last_updated`

// Create inserts a listing and fills in its assigned id and timestamps.
func (s *SQLiteStore) Create(ctx context.Context, listing *models.Listing) error {
	now := time.Now()
	listing.CreatedAt = now
	listing.LastUpdated = now

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO listings (name, service_type, county, city, community,
		 description, detailed_description, tags, features, available, view_count,
		 created_at, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.Name, listing.ServiceType, listing.County, listing.City,
		listing.Community, listing.Description, listing.DetailedDescription,
		listing.Tags, listing.Features, listing.Available, listing.ViewCount,
		listing.CreatedAt, listing.LastUpdated,
	)
	if err != nil {
		return err
	}
	listing.ID, err = res.LastInsertId()
	return err
}

// Get returns a listing by id.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*models.Listing, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE id = ?`, id,
	)
	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Update rewrites an existing listing and bumps its lastUpdated timestamp.
func (s *SQLiteStore) Update(ctx context.Context, listing *models.Listing) error {
	listing.LastUpdated = time.Now()

	res, err := s.db.ExecContext(ctx,
		`UPDATE listings SET name = ?, service_type = ?, county = ?, city = ?,
		 community = ?, description = ?, detailed_description = ?, tags = ?,
		 features = ?, available = ?, last_updated = ?
		 WHERE id = ?`,
		listing.Name, listing.ServiceType, listing.County, listing.City,
		listing.Community, listing.Description, listing.DetailedDescription,
		listing.Tags, listing.Features, listing.Available, listing.LastUpdated,
		listing.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("listing %d: %w", listing.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a listing by id.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	return nil
}

// All returns every listing ordered by id descending.
func (s *SQLiteStore) All(ctx context.Context) ([]*models.Listing, error) {
	return s.queryListings(ctx,
		`SELECT `+listingColumns+` FROM listings ORDER BY id DESC`)
}

// AllAvailable returns every available listing ordered by id descending.
func (s *SQLiteStore) AllAvailable(ctx context.Context) ([]*models.Listing, error) {
	return s.queryListings(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE available = 1 ORDER BY id DESC`)
}

// RecordView increments a listing's view counter.
func (s *SQLiteStore) RecordView(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE listings SET view_count = view_count + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the total number of listings.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&n)
	return n, err
}

// CountAvailable returns the number of available listings.
func (s *SQLiteStore) CountAvailable(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM listings WHERE available = 1`).Scan(&n)
	return n, err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) queryListings(ctx context.Context, query string) ([]*models.Listing, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []*models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID, &l.Name, &l.ServiceType, &l.County, &l.City, &l.Community,
		&l.Description, &l.DetailedDescription, &l.Tags, &l.Features,
		&l.Available, &l.ViewCount, &l.CreatedAt, &l.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
