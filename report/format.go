package report

import (
	"fmt"
	"math"
	"strings"
)

// Round rounds to the given number of decimal digits for display.
func Round(value float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(value*factor) / factor
}

// FormatCurrency renders a value in Brazilian real notation:
// "R$ 1.234,56" with a dot as the thousands separator and a comma as the
// decimal separator.
func FormatCurrency(value float64) string {
	negative := value < 0
	cents := int64(math.Round(math.Abs(value) * 100))
	whole := cents / 100
	fraction := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), fraction)
}

// FormatPercent renders a percentage with one decimal digit.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatCount renders an integer with dot thousands separators.
func FormatCount(value int) string {
	digits := fmt.Sprintf("%d", value)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}
	if negative {
		return "-" + grouped.String()
	}
	return grouped.String()
}
