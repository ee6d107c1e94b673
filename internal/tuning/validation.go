package tuning

import "strconv"

// ValidateEntryInput reports whether text is made only of decimal digits
// and its integer value lies within the inclusive bounds [min, max].
func ValidateEntryInput(text string, min, max int) bool {
	v, ok := parseDigits(text)
	if !ok {
		return false
	}
	return v >= min && v <= max
}

// validEntryEdit is the check applied to every entry change. Unlike
// ValidateEntryInput its upper bound is exclusive, so typing the row's
// max is rejected even though the slider can reach it.
func validEntryEdit(text string, min, max int) (int, bool) {
	v, ok := parseDigits(text)
	if !ok {
		return 0, false
	}
	if v < min || v >= max {
		return v, false
	}
	return v, true
}

// parseDigits parses a non-empty string of ASCII digits. Signs, spaces
// and values overflowing int are rejected.
func parseDigits(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return v, true
}
