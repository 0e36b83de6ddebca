// Package catalog holds the process-wide, read-only listing collection.
package catalog

import (
	"errors"

	"realtyhub/models"
)

// ErrListingNotFound is returned by callers that need an error for a failed
// ByID lookup. The repository itself reports absence with a boolean.
var ErrListingNotFound = errors.New("listing not found")

// Repository is an immutable, ordered set of listings indexed by id.
// It is safe for concurrent readers because nothing mutates it after New.
type Repository struct {
	listings  []models.Listing
	byID      map[string]int
	locations []string
}

// New builds a repository from listings in the given order. When ids repeat,
// the first occurrence wins; feed external data through services.Cleaner
// first to get a warning for each dropped record.
func New(listings []models.Listing, locations ...string) *Repository {
	r := &Repository{
		listings:  make([]models.Listing, 0, len(listings)),
		byID:      make(map[string]int, len(listings)),
		locations: append([]string(nil), locations...),
	}
	for _, l := range listings {
		if _, dup := r.byID[l.ID]; dup {
			continue
		}
		r.byID[l.ID] = len(r.listings)
		r.listings = append(r.listings, l.Clone())
	}
	return r
}

// All returns every listing in insertion order. The slice is a copy.
func (r *Repository) All() []models.Listing {
	out := make([]models.Listing, len(r.listings))
	for i, l := range r.listings {
		out[i] = l.Clone()
	}
	return out
}

// ByID looks a listing up by id. The boolean is false for unknown ids.
func (r *Repository) ByID(id string) (models.Listing, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.Listing{}, false
	}
	return r.listings[i].Clone(), true
}

// Featured returns the featured listings in catalog order.
func (r *Repository) Featured() []models.Listing {
	var out []models.Listing
	for _, l := range r.listings {
		if l.Featured {
			out = append(out, l.Clone())
		}
	}
	return out
}

// Locations returns the location suggestions offered by the search box.
// When none were supplied, the distinct listing locations are used.
func (r *Repository) Locations() []string {
	if len(r.locations) > 0 {
		return append([]string(nil), r.locations...)
	}
	seen := make(map[string]struct{})
	var out []string
	for _, l := range r.listings {
		if _, ok := seen[l.Location]; ok || l.Location == "" {
			continue
		}
		seen[l.Location] = struct{}{}
		out = append(out, l.Location)
	}
	return out
}

// Len returns the number of listings.
func (r *Repository) Len() int { return len(r.listings) }
