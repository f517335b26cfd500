// Package money formats monetary amounts for display.
package money

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatUSD renders an amount with a fixed "$" prefix, exactly two fraction
// digits, and grouping separators every three integer digits. Rounding happens
// at the third decimal digit, half away from zero. Negative amounts keep the
// sign after the currency symbol: "$-123.00".
func FormatUSD(amount float64) string {
	cents := int64(math.Round(amount * 100))

	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("$%s%s.%02d", sign, humanize.Comma(cents/100), cents%100)
}
