package validators

import "strings"

// phoneDigits is the fixed length of an Indian mobile number without the
// country code.
const phoneDigits = 10

// NormalizePhone strips everything that is not a digit and truncates to ten
// digits, mirroring how the booking form reduces raw input.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == phoneDigits {
				break
			}
		}
	}
	return b.String()
}

// IsValidPhone accepts exactly ten digits after normalization.
func IsValidPhone(normalized string) bool {
	if len(normalized) != phoneDigits {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
