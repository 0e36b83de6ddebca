// Package money renders rupee amounts the way Indian listings display them.
package money

import (
	"strconv"
	"strings"
)

const (
	Lakh  int64 = 100_000
	Crore int64 = 10_000_000

	symbol = "₹"
)

// Format renders price using the two-tier lakh/crore convention:
// amounts of a crore or more become "₹x.y Cr", amounts of a lakh or more
// become "₹x.y L", and anything smaller is grouped Indian style.
func Format(price int64) string {
	switch {
	case price >= Crore:
		return symbol + tenths(price, Crore) + " Cr"
	case price >= Lakh:
		return symbol + tenths(price, Lakh) + " L"
	default:
		return symbol + Group(price)
	}
}

// tenths divides n by unit and renders the quotient with one decimal,
// rounding halves up.
func tenths(n, unit int64) string {
	t := (n*10 + unit/2) / unit
	return strconv.FormatInt(t/10, 10) + "." + strconv.FormatInt(t%10, 10)
}

// Group formats n with Indian digit grouping: the last three digits, then
// groups of two (12,34,567).
func Group(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return sign + strings.Join(parts, ",") + "," + tail
}
