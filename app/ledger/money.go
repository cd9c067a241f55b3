package ledger

import "github.com/shopspring/decimal"

// All arithmetic inside the engine runs on int64 minor units (kobo).
// The helpers below exist for the presentation boundary only; nothing in
// Reduce/Aggregate calls them.

// MinorPerMajor is the number of minor units in one major currency unit.
const MinorPerMajor = 100

// ToMajor converts minor units to a major-unit decimal (e.g. 5000000 kobo
// -> 50000.00 naira).
func ToMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// FromMajor converts a major-unit decimal to minor units, truncating any
// sub-kobo fraction.
func FromMajor(major decimal.Decimal) int64 {
	return major.Shift(2).IntPart()
}

// FormatMinor renders minor units as a display string with thousands
// separators, e.g. 5000000 -> "50,000.00".
func FormatMinor(minor int64) string {
	s := ToMajor(minor).StringFixed(2)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	whole, frac := s[:len(s)-3], s[len(s)-3:]

	var out []byte
	for i, c := range []byte(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	formatted := string(out) + frac
	if neg {
		return "-" + formatted
	}
	return formatted
}
