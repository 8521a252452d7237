package utils

import "regexp"

var (
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidEmail reports whether s looks like a standard email address.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidPhone reports whether s is exactly ten digits.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
