package search

import (
	"strconv"
	"strings"
)

// ParsePrice converts a Brazilian-formatted price string to its numeric
// value: "R$ 450.000" -> 450000, "R$ 450.000,50" -> 450000.5. The period is
// a thousands separator and the comma a decimal separator. Empty or
// unparseable input yields 0.
func ParsePrice(price string) float64 {
	if price == "" {
		return 0
	}

	cleaned := strings.ReplaceAll(price, "R$", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, " ", ""))
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}

// FormatPrice renders a numeric value in the Brazilian display format used
// by listings. The numeric value round-trips through ParsePrice.
func FormatPrice(price float64) string {
	negative := price < 0
	if negative {
		price = -price
	}

	s := strconv.FormatFloat(price, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := "R$ " + b.String()
	if negative {
		out = "R$ -" + b.String()
	}
	if fracPart != "" {
		out += "," + fracPart
	}
	return out
}
