// Package query evaluates catalog searches: a conjunctive filter over text,
// type and price band followed by a stable sort.
package query

import (
	"sort"
	"strings"

	"realtyhub/models"
)

// Predicate reports whether a listing belongs to a result set.
type Predicate func(models.Listing) bool

// Evaluate filters catalog with spec and orders the survivors by
// spec.SortKey. The input slice is left untouched and the result is never
// nil. Listings with equal sort keys keep their catalog order.
func Evaluate(spec models.QuerySpec, catalog []models.Listing) []models.Listing {
	match := Matcher(spec)

	result := make([]models.Listing, 0, len(catalog))
	for _, l := range catalog {
		if match(l) {
			result = append(result, l)
		}
	}

	if less := comparator(spec.SortKey, result); less != nil {
		sort.SliceStable(result, less)
	}
	return result
}

// Matcher composes the text, type and price predicates of spec.
func Matcher(spec models.QuerySpec) Predicate {
	text := matchText(spec.Text)
	kind := matchType(spec.Type)
	price := ParseRange(spec.PriceToken)

	return func(l models.Listing) bool {
		return text(l) && kind(l) && price.Contains(l.Price)
	}
}

func matchText(q string) Predicate {
	if q == "" {
		return func(models.Listing) bool { return true }
	}
	needle := strings.ToLower(q)
	return func(l models.Listing) bool {
		return strings.Contains(strings.ToLower(l.Title), needle) ||
			strings.Contains(strings.ToLower(l.Location), needle)
	}
}

func matchType(t models.PropertyType) Predicate {
	if t == "" || t == models.AnyType {
		return func(models.Listing) bool { return true }
	}
	return func(l models.Listing) bool { return l.Type == t }
}

// comparator returns the less function for key, or nil when key is unknown
// and the filtered order should be kept.
func comparator(key models.SortKey, ls []models.Listing) func(i, j int) bool {
	switch key {
	case models.SortPriceAsc:
		return func(i, j int) bool { return ls[i].Price < ls[j].Price }
	case models.SortPriceDesc:
		return func(i, j int) bool { return ls[i].Price > ls[j].Price }
	case models.SortAreaDesc:
		return func(i, j int) bool { return ls[i].Area > ls[j].Area }
	case models.SortNewest:
		return func(i, j int) bool { return ls[i].YearBuilt > ls[j].YearBuilt }
	default:
		return nil
	}
}
