package models

// PropertyType is the fixed enumeration of listing kinds.
type PropertyType string

const (
	House      PropertyType = "house"
	Apartment  PropertyType = "apartment"
	Commercial PropertyType = "commercial"
	Plot       PropertyType = "plot"

	// AnyType is the filter sentinel that matches every listing.
	AnyType PropertyType = "all"
)

// ValidTypes is the set of property types a listing may carry.
var ValidTypes = []PropertyType{House, Apartment, Commercial, Plot}

// IsValid reports whether t is one of ValidTypes. The AnyType sentinel is
// not a listing type and is rejected.
func (t PropertyType) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns the plural label shown in the type filter.
func (t PropertyType) Label() string {
	switch t {
	case AnyType, "":
		return "All Types"
	case House:
		return "Houses"
	case Apartment:
		return "Apartments"
	case Commercial:
		return "Commercial"
	case Plot:
		return "Plots"
	default:
		return string(t)
	}
}

// Listing is one property record of the catalog. Values are treated as
// immutable once the catalog has been seeded.
type Listing struct {
	ID        string       `json:"id" yaml:"id"`
	Title     string       `json:"title" yaml:"title"`
	Location  string       `json:"location" yaml:"location"`
	Price     int64        `json:"price" yaml:"price"` // whole rupees
	Bedrooms  int          `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms int          `json:"bathrooms" yaml:"bathrooms"`
	Area      float64      `json:"area" yaml:"area"` // sq ft
	Type      PropertyType `json:"type" yaml:"type"`
	ImageRef  string       `json:"image" yaml:"image"`
	Featured  bool         `json:"featured" yaml:"featured"`

	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty" yaml:"amenities,omitempty"`
	YearBuilt   int      `json:"yearBuilt,omitempty" yaml:"yearBuilt,omitempty"` // 0 when unknown
	LotSize     float64  `json:"lotSize,omitempty" yaml:"lotSize,omitempty"`     // acres
	Floor       int      `json:"floor,omitempty" yaml:"floor,omitempty"`
}

// Clone returns a copy of l that shares no slices with it.
func (l Listing) Clone() Listing {
	if l.Amenities != nil {
		l.Amenities = append([]string(nil), l.Amenities...)
	}
	return l
}

// SummaryReport holds aggregate figures over a result set.
type SummaryReport struct {
	TotalListings      int
	FeaturedListings   int
	AveragePrice       int64
	MinPrice           int64
	MaxPrice           int64
	MostExpensive      *Listing
	Largest            *Listing
	ListingsByType     map[PropertyType]int
	ListingsByLocation map[string]int
}
