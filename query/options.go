package query

import "realtyhub/models"

// Option is one entry of a filter drop-down: the token passed back into a
// QuerySpec and the label shown to the user.
type Option struct {
	Value string
	Label string
}

// PriceBands are the price tokens offered by the search bar.
var PriceBands = []Option{
	{models.AnyPrice, "Any Price"},
	{"0-2500000", "Under ₹25L"},
	{"2500000-5000000", "₹25L - ₹50L"},
	{"5000000-15000000", "₹50L - ₹1.5Cr"},
	{"15000000-30000000", "₹1.5Cr - ₹3Cr"},
	{"30000000", "₹3Cr+"},
}

// SortOptions label every supported sort key.
var SortOptions = []Option{
	{string(models.SortPriceAsc), "Price: Low to High"},
	{string(models.SortPriceDesc), "Price: High to Low"},
	{string(models.SortAreaDesc), "Largest First"},
	{string(models.SortNewest), "Newest First"},
}

// TypeOptions returns the type filter entries, "all" first.
func TypeOptions() []Option {
	opts := []Option{{string(models.AnyType), models.AnyType.Label()}}
	for _, t := range models.ValidTypes {
		opts = append(opts, Option{string(t), t.Label()})
	}
	return opts
}

// BandLabel returns the label of a known price token, or the token itself.
func BandLabel(token string) string {
	if token == "" {
		token = models.AnyPrice
	}
	for _, b := range PriceBands {
		if b.Value == token {
			return b.Label
		}
	}
	return token
}
