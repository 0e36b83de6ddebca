package models

// SortKey selects the order applied to a filtered result set.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortAreaDesc  SortKey = "area-desc"
	SortNewest    SortKey = "newest"
)

// DefaultSort is the order used when none is requested.
const DefaultSort = SortPriceAsc

// AnyPrice is the price token sentinel that disables price filtering.
const AnyPrice = "all"

// SortKeys lists the supported sort keys in display order.
var SortKeys = []SortKey{SortPriceAsc, SortPriceDesc, SortAreaDesc, SortNewest}

// IsValid reports whether k is a supported sort key.
func (k SortKey) IsValid() bool {
	for _, v := range SortKeys {
		if k == v {
			return true
		}
	}
	return false
}

// QuerySpec is the tuple of search, filter and sort parameters for one
// evaluation. It is rebuilt from user input on every search.
type QuerySpec struct {
	Text       string
	Type       PropertyType // empty or AnyType matches every type
	PriceToken string       // empty or AnyPrice matches every price
	SortKey    SortKey
}

// PriceRange is an inclusive price interval. When Bounded is false the
// interval is open above Min.
type PriceRange struct {
	Min     int64
	Max     int64
	Bounded bool
}

// Contains reports whether price falls inside the range.
func (r PriceRange) Contains(price int64) bool {
	if price < r.Min {
		return false
	}
	return !r.Bounded || price <= r.Max
}
