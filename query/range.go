package query

import (
	"strconv"
	"strings"

	"realtyhub/models"
)

// ParseRange turns a price band token into a PriceRange.
//
// "min-max" is inclusive on both ends, a lone "min" (or "min-" with an empty
// or non-numeric upper part) means that amount and above, and an empty token
// or "all" matches every price. The parser never fails: a malformed part
// places no constraint on its bound. A zero or inverted upper bound is
// dropped, leaving the range open above min.
func ParseRange(token string) models.PriceRange {
	token = strings.TrimSpace(token)
	if token == "" || token == models.AnyPrice {
		return models.PriceRange{}
	}

	lo, hi, hasSep := strings.Cut(token, "-")

	r := models.PriceRange{}
	if n, ok := parseBound(lo); ok {
		r.Min = n
	}
	if !hasSep {
		return r
	}
	if n, ok := parseBound(hi); ok && n > 0 && n >= r.Min {
		r.Max = n
		r.Bounded = true
	}
	return r
}

func parseBound(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
