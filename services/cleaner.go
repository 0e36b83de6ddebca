package services

import (
	"strings"
	"unicode"

	"realtyhub/models"
	"realtyhub/utils"
)

// Cleaner validates externally supplied catalog seeds before they are
// turned into a catalog.Repository.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean normalises text fields and drops listings that break the catalog
// invariants: empty or repeated id, unknown type, negative price or a
// non-positive area. Order is preserved.
func (c *Cleaner) Clean(raw []models.Listing) []models.Listing {
	seen := make(map[string]struct{})
	result := make([]models.Listing, 0, len(raw))

	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			c.logger.Warn("[cleaner] Dropping listing with empty id: %q", r.Title)
			continue
		}
		if _, dup := seen[id]; dup {
			c.logger.Warn("[cleaner] Duplicate id %s skipped: %q", id, r.Title)
			continue
		}

		kind := models.PropertyType(strings.ToLower(strings.TrimSpace(string(r.Type))))
		if !kind.IsValid() {
			c.logger.Warn("[cleaner] Dropping listing %s with unknown type %q", id, r.Type)
			continue
		}
		if r.Price < 0 {
			c.logger.Warn("[cleaner] Dropping listing %s with negative price %d", id, r.Price)
			continue
		}
		if r.Area <= 0 {
			c.logger.Warn("[cleaner] Dropping listing %s with area %.2f", id, r.Area)
			continue
		}
		seen[id] = struct{}{}

		listing := r.Clone()
		listing.ID = id
		listing.Type = kind
		listing.Title = normaliseText(r.Title)
		listing.Location = normaliseText(r.Location)
		listing.Description = normaliseText(r.Description)
		if listing.Bedrooms < 0 {
			listing.Bedrooms = 0
		}
		if listing.Bathrooms < 0 {
			listing.Bathrooms = 0
		}

		result = append(result, listing)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d listings (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
