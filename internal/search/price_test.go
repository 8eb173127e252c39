package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"thousands only", "R$ 450.000", 450000},
		{"with decimals", "R$ 450.000,50", 450000.50},
		{"millions", "R$ 1.200.000", 1200000},
		{"no separator", "R$ 999", 999},
		{"no currency prefix", "320.000", 320000},
		{"empty", "", 0},
		{"garbage", "a combinar", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePrice(tt.input))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 450.000", FormatPrice(450000))
	assert.Equal(t, "R$ 1.200.000", FormatPrice(1200000))
	assert.Equal(t, "R$ 999", FormatPrice(999))
	assert.Equal(t, "R$ 450.000,5", FormatPrice(450000.5))
}

func TestPriceRoundTrip(t *testing.T) {
	// The numeric value survives format -> parse, even if the exact string
	// may differ from the stored one.
	for _, price := range []string{"R$ 450.000", "R$ 320.000,75", "R$ 1.200.000", "R$ 180.000"} {
		value := ParsePrice(price)
		assert.Equal(t, value, ParsePrice(FormatPrice(value)), price)
	}
}
