package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"realtyhub/models"
	"realtyhub/utils"
)

const listingColumns = 16

// PostgresCatalog stores a catalog seed in PostgreSQL. The position column
// preserves catalog order across a round trip.
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog opens a connection to PostgreSQL, waits for it with
// retry, runs schema migrations, and returns a ready-to-use PostgresCatalog.
func NewPostgresCatalog(ctx context.Context, dsn string, retry *utils.RetryConfig) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if retry == nil {
		retry = &utils.RetryConfig{MaxAttempts: 1}
	}
	if err := retry.Do(ctx, "postgres-ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pc := &PostgresCatalog{db: db}
	if err := pc.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return pc, nil
}

func (pc *PostgresCatalog) migrate(ctx context.Context) error {
	_, err := pc.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			id          TEXT         PRIMARY KEY,
			position    INTEGER      NOT NULL,
			title       TEXT         NOT NULL,
			location    TEXT         NOT NULL DEFAULT '',
			price       BIGINT       NOT NULL DEFAULT 0 CHECK (price >= 0),
			bedrooms    INTEGER      NOT NULL DEFAULT 0,
			bathrooms   INTEGER      NOT NULL DEFAULT 0,
			area        NUMERIC(12,2) NOT NULL DEFAULT 0,
			type        VARCHAR(20)  NOT NULL,
			image_ref   TEXT         NOT NULL DEFAULT '',
			featured    BOOLEAN      NOT NULL DEFAULT FALSE,
			description TEXT         NOT NULL DEFAULT '',
			amenities   TEXT[]       NOT NULL DEFAULT '{}',
			year_built  INTEGER      NOT NULL DEFAULT 0,
			lot_size    NUMERIC(8,2) NOT NULL DEFAULT 0,
			floor       INTEGER      NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_listings_position ON listings(position);
		CREATE INDEX IF NOT EXISTS idx_listings_price    ON listings(price);
		CREATE INDEX IF NOT EXISTS idx_listings_type     ON listings(type);
	`)
	return err
}

// Write replaces the stored catalog with listings inside one transaction.
func (pc *PostgresCatalog) Write(listings []models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := pc.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		query, args := insertBatch(i, listings[i:end])
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("postgres: insert batch at %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// insertBatch builds one multi-row INSERT; offset is the catalog position of
// the first listing in batch.
func insertBatch(offset int, batch []models.Listing) (string, []interface{}) {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*listingColumns)

	for idx, l := range batch {
		placeholders := make([]string, listingColumns)
		for c := range placeholders {
			placeholders[c] = fmt.Sprintf("$%d", idx*listingColumns+c+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")

		amenities := l.Amenities
		if amenities == nil {
			amenities = []string{}
		}
		valueArgs = append(valueArgs,
			l.ID, offset+idx, l.Title, l.Location, l.Price, l.Bedrooms, l.Bathrooms, l.Area,
			string(l.Type), l.ImageRef, l.Featured, l.Description, pq.Array(amenities),
			l.YearBuilt, l.LotSize, l.Floor)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (id, position, title, location, price, bedrooms, bathrooms, area,
			type, image_ref, featured, description, amenities, year_built, lot_size, floor)
		VALUES %s
	`, strings.Join(valueStrings, ","))
	return query, valueArgs
}

// FetchAll retrieves the stored catalog in its original order.
func (pc *PostgresCatalog) FetchAll() ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	rows, err := pc.db.QueryContext(ctx, `
		SELECT id, title, location, price, bedrooms, bathrooms, area, type, image_ref,
			featured, description, amenities, year_built, lot_size, floor
		FROM listings
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		var kind string
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Location, &l.Price, &l.Bedrooms, &l.Bathrooms, &l.Area,
			&kind, &l.ImageRef, &l.Featured, &l.Description, pq.Array(&l.Amenities),
			&l.YearBuilt, &l.LotSize, &l.Floor,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		l.Type = models.PropertyType(kind)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (pc *PostgresCatalog) Close() error {
	return pc.db.Close()
}
