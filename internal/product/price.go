package product

import (
	"regexp"
	"strconv"
)

var nonPriceChars = regexp.MustCompile(`[^0-9.]`)

// ParsePrice extracts the numeric amount from a decimal-bearing price string
// such as "$19.99" or "1,299.50" by stripping every character that is not a
// digit or a dot. Unparseable input yields 0.
func ParsePrice(s string) float64 {
	cleaned := nonPriceChars.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
