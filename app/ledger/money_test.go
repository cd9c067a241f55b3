package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMinor(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{50, "0.50"},
		{5_000_000, "50,000.00"},
		{123_456_789, "1,234,567.89"},
		{-250_075, "-2,500.75"},
	}

	for _, tt := range tests {
		if got := FormatMinor(tt.minor); got != tt.want {
			t.Errorf("FormatMinor(%d) = %q, want %q", tt.minor, got, tt.want)
		}
	}
}

func TestMajorMinorRoundTrip(t *testing.T) {
	if got := FromMajor(ToMajor(5_000_000)); got != 5_000_000 {
		t.Errorf("round trip = %d, want 5000000", got)
	}
	if got := FromMajor(decimal.RequireFromString("50000.00")); got != 5_000_000 {
		t.Errorf("FromMajor(50000.00) = %d, want 5000000", got)
	}
	// Sub-kobo fractions truncate rather than round.
	if got := FromMajor(decimal.RequireFromString("0.019")); got != 1 {
		t.Errorf("FromMajor(0.019) = %d, want 1", got)
	}
}
