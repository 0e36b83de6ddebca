package catalog

import "realtyhub/models"

// PopularLocations are the search suggestions shipped with the built-in
// catalog.
var PopularLocations = []string{
	"Bandra West, Mumbai",
	"Connaught Place, New Delhi",
	"Koregaon Park, Pune",
	"Whitefield, Bangalore",
	"Gurgaon, Haryana",
	"Lower Parel, Mumbai",
	"Andheri East, Mumbai",
	"Sector 56, Noida",
	"MG Road, Bangalore",
	"Cyber City, Gurgaon",
}

// Builtin returns a repository seeded with the default listings.
func Builtin() *Repository {
	return New(seedListings(), PopularLocations...)
}

func seedListings() []models.Listing {
	return []models.Listing{
		{
			ID:          "1",
			Title:       "Modern Family Home with Garden",
			Price:       35_000_000,
			Location:    "Bandra West, Mumbai",
			Bedrooms:    4,
			Bathrooms:   3,
			Area:        2400,
			Type:        models.House,
			ImageRef:    "photo-1487958449943-2429e8be8625",
			Featured:    true,
			Description: "Beautiful modern family home with spacious garden, updated kitchen, and premium finishes throughout.",
			Amenities:   []string{"Garden", "Garage", "Fireplace", "Modern Kitchen", "Walk-in Closet"},
			YearBuilt:   2018,
			LotSize:     0.25,
		},
		{
			ID:          "2",
			Title:       "Luxury Downtown Apartment",
			Price:       55_000_000,
			Location:    "Connaught Place, New Delhi",
			Bedrooms:    2,
			Bathrooms:   2,
			Area:        1200,
			Type:        models.Apartment,
			ImageRef:    "photo-1721322800607-8c38375eef04",
			Featured:    true,
			Description: "High-end apartment in the heart of downtown with stunning city views and luxury amenities.",
			Amenities:   []string{"City View", "Gym", "Concierge", "Rooftop Terrace", "In-unit Laundry"},
			YearBuilt:   2020,
			Floor:       15,
		},
		{
			ID:          "3",
			Title:       "Charming Victorian House",
			Price:       45_000_000,
			Location:    "Koregaon Park, Pune",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        1800,
			Type:        models.House,
			ImageRef:    "photo-1518005020951-eccb494ad742",
			Description: "Beautifully restored Victorian home with original hardwood floors and period details.",
			Amenities:   []string{"Hardwood Floors", "Period Details", "Bay Windows", "Clawfoot Tub"},
			YearBuilt:   1895,
			LotSize:     0.15,
		},
		{
			ID:          "4",
			Title:       "Contemporary Condo with Pool",
			Price:       25_000_000,
			Location:    "Whitefield, Bangalore",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        950,
			Type:        models.Apartment,
			ImageRef:    "photo-1466442929976-97f336a657be",
			Description: "Modern condo in desirable complex with pool, fitness center, and covered parking.",
			Amenities:   []string{"Pool", "Fitness Center", "Covered Parking", "Balcony"},
			YearBuilt:   2015,
			Floor:       3,
		},
		{
			ID:          "5",
			Title:       "Spacious Family Ranch",
			Price:       32_000_000,
			Location:    "Gurgaon, Haryana",
			Bedrooms:    5,
			Bathrooms:   3,
			Area:        2800,
			Type:        models.House,
			ImageRef:    "photo-1492321936769-b49830bc1d1e",
			Featured:    true,
			Description: "Large ranch-style home perfect for families, featuring open floor plan and mountain views.",
			Amenities:   []string{"Mountain Views", "Open Floor Plan", "Large Yard", "2-Car Garage"},
			YearBuilt:   2010,
			LotSize:     0.3,
		},
		{
			ID:          "6",
			Title:       "Prime Commercial Plot",
			Price:       75_000_000,
			Location:    "Lower Parel, Mumbai",
			Area:        5000,
			Type:        models.Commercial,
			ImageRef:    "photo-1433086966358-54859d0ed716",
			Description: "Prime commercial land perfect for development, located in high-traffic area.",
			Amenities:   []string{"High Traffic", "Corner Lot", "Development Ready", "Utilities Available"},
			LotSize:     1.2,
		},
		{
			ID:          "7",
			Title:       "Cozy Studio Apartment",
			Price:       15_000_000,
			Location:    "Andheri East, Mumbai",
			Bathrooms:   1,
			Area:        450,
			Type:        models.Apartment,
			ImageRef:    "photo-1649972904349-6e44c42644a7",
			Description: "Perfect starter home or investment property in vibrant neighborhood.",
			Amenities:   []string{"Updated Kitchen", "Hardwood Floors", "Near Transit"},
			YearBuilt:   2005,
			Floor:       8,
		},
		{
			ID:          "8",
			Title:       "Suburban Family Home",
			Price:       28_000_000,
			Location:    "Sector 56, Noida",
			Bedrooms:    4,
			Bathrooms:   2,
			Area:        2200,
			Type:        models.House,
			ImageRef:    "photo-1488590528505-98d2b5aba04b",
			Description: "Great family home in quiet suburban neighborhood with excellent schools.",
			Amenities:   []string{"Quiet Neighborhood", "Great Schools", "Backyard", "Garage"},
			YearBuilt:   2008,
			LotSize:     0.2,
		},
	}
}
