package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{25_000_000, "₹2.5 Cr"},
		{10_000_000, "₹1.0 Cr"},
		{75_000_000, "₹7.5 Cr"},
		{12_500_000, "₹1.3 Cr"},
		{5_000_000, "₹50.0 L"},
		{100_000, "₹1.0 L"},
		{9_999_999, "₹100.0 L"},
		{99_999, "₹99,999"},
		{1_000, "₹1,000"},
		{999, "₹999"},
		{0, "₹0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.price), "Format(%d)", tt.price)
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{1234, "1,234"},
		{12345, "12,345"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{123456789, "12,34,56,789"},
		{-123456, "-1,23,456"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Group(tt.n), "Group(%d)", tt.n)
	}
}
