package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"realtyhub/models"
	"realtyhub/money"
	"realtyhub/utils"
)

// SummaryService computes aggregate figures over a result set.
type SummaryService struct {
	logger *utils.Logger
}

func NewSummaryService(logger *utils.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Generate summarises listings. Ties for most expensive and largest go to
// the earlier listing.
func (s *SummaryService) Generate(listings []models.Listing) *models.SummaryReport {
	report := &models.SummaryReport{
		ListingsByType:     make(map[models.PropertyType]int),
		ListingsByLocation: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)
	report.MinPrice = listings[0].Price
	report.MaxPrice = listings[0].Price

	var total int64
	for i := range listings {
		l := &listings[i]
		total += l.Price
		if l.Featured {
			report.FeaturedListings++
		}
		if l.Price < report.MinPrice {
			report.MinPrice = l.Price
		}
		if report.MostExpensive == nil || l.Price > report.MostExpensive.Price {
			report.MaxPrice = l.Price
			report.MostExpensive = l
		}
		if report.Largest == nil || l.Area > report.Largest.Area {
			report.Largest = l
		}
		report.ListingsByType[l.Type]++
		if l.Location != "" {
			report.ListingsByLocation[city(l.Location)]++
		}
	}
	report.AveragePrice = (total + int64(len(listings))/2) / int64(len(listings))

	s.logger.Debug("[summary] %d listings, avg %s", report.TotalListings, money.Format(report.AveragePrice))
	return report
}

// city returns the last comma-separated part of a location, which is the
// city in "Neighbourhood, City" strings.
func city(location string) string {
	parts := strings.Split(location, ",")
	return strings.TrimSpace(parts[len(parts)-1])
}

func (s *SummaryService) Print(w io.Writer, r *models.SummaryReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Fprintf(w, "\n%s\n", sep)
	fmt.Fprintf(w, "  CATALOG SUMMARY\n")
	fmt.Fprintf(w, "%s\n\n", sep)

	fmt.Fprintf(w, "  Overview\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Properties found : %d\n", r.TotalListings)
	fmt.Fprintf(w, "  Featured         : %d\n", r.FeaturedListings)
	fmt.Fprintln(w)

	if r.TotalListings == 0 {
		fmt.Fprintf(w, "  No properties match the current filters\n\n%s\n\n", sep)
		return
	}

	fmt.Fprintf(w, "  Price Statistics\n")
	fmt.Fprintf(w, "  %s\n", thin)
	fmt.Fprintf(w, "  Average price : %s\n", money.Format(r.AveragePrice))
	fmt.Fprintf(w, "  Minimum price : %s\n", money.Format(r.MinPrice))
	fmt.Fprintf(w, "  Maximum price : %s\n", money.Format(r.MaxPrice))
	fmt.Fprintln(w)

	if r.MostExpensive != nil {
		fmt.Fprintf(w, "  Most Expensive\n")
		fmt.Fprintf(w, "  %s\n", thin)
		fmt.Fprintf(w, "  %s\n", truncate(r.MostExpensive.Title, 50))
		fmt.Fprintf(w, "  Location : %s\n", r.MostExpensive.Location)
		fmt.Fprintf(w, "  Price    : %s\n", money.Format(r.MostExpensive.Price))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "  By Type\n")
	fmt.Fprintf(w, "  %s\n", thin)
	for _, t := range models.ValidTypes {
		if n := r.ListingsByType[t]; n > 0 {
			fmt.Fprintf(w, "  %-30s %s (%d)\n", t.Label(), strings.Repeat("█", n), n)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  By City\n")
	fmt.Fprintf(w, "  %s\n", thin)
	type locCount struct {
		loc   string
		count int
	}
	var locs []locCount
	for loc, cnt := range r.ListingsByLocation {
		locs = append(locs, locCount{loc, cnt})
	}
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].count != locs[j].count {
			return locs[i].count > locs[j].count
		}
		return locs[i].loc < locs[j].loc
	})
	for _, lc := range locs {
		fmt.Fprintf(w, "  %-30s %s (%d)\n", truncate(lc.loc, 28), strings.Repeat("█", lc.count), lc.count)
	}

	fmt.Fprintf(w, "\n%s\n\n", sep)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
