package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"realtyhub/models"
	"realtyhub/money"
)

// printListings writes one row per listing, in the order given.
func printListings(w io.Writer, listings []models.Listing) {
	if len(listings) == 0 {
		fmt.Fprintln(w, "No properties found. Try adjusting your search criteria.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tTYPE\tPRICE\tBEDS\tBATHS\tAREA\t")
	for _, l := range listings {
		title := l.Title
		if l.Featured {
			title = "★ " + title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s sq ft\t\n",
			l.ID, title, l.Location, l.Type, money.Format(l.Price),
			beds(l), l.Bathrooms, money.Group(int64(l.Area)))
	}
	tw.Flush()
}

// printDetail writes the full record of a single listing.
func printDetail(w io.Writer, l models.Listing) {
	fmt.Fprintf(w, "%s\n", l.Title)
	fmt.Fprintf(w, "%s\n\n", l.Location)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Price\t%s\t\n", money.Format(l.Price))
	fmt.Fprintf(tw, "Type\t%s\t\n", l.Type)
	fmt.Fprintf(tw, "Bedrooms\t%s\t\n", beds(l))
	fmt.Fprintf(tw, "Bathrooms\t%d\t\n", l.Bathrooms)
	fmt.Fprintf(tw, "Area\t%s sq ft\t\n", money.Group(int64(l.Area)))
	if l.YearBuilt > 0 {
		fmt.Fprintf(tw, "Year built\t%d\t\n", l.YearBuilt)
	}
	if l.LotSize > 0 {
		fmt.Fprintf(tw, "Lot size\t%s acres\t\n", strconv.FormatFloat(l.LotSize, 'f', -1, 64))
	}
	if l.Floor > 0 {
		fmt.Fprintf(tw, "Floor\t%d\t\n", l.Floor)
	}
	if l.Featured {
		fmt.Fprintf(tw, "Featured\tyes\t\n")
	}
	tw.Flush()

	if l.Description != "" {
		fmt.Fprintf(w, "\n%s\n", l.Description)
	}
	if len(l.Amenities) > 0 {
		fmt.Fprintf(w, "\nAmenities: %s\n", strings.Join(l.Amenities, ", "))
	}
}

// beds renders a bedroom count; plots and commercial units usually have none.
func beds(l models.Listing) string {
	if l.Bedrooms == 0 {
		return "-"
	}
	return strconv.Itoa(l.Bedrooms)
}
