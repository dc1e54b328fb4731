package model

import (
	"fmt"
	"strings"
)

// FormatUSD renders a positive amount as a dollar string with comma grouping
// and two decimals: 1234.5 -> "$1,234.50". Amounts in this system are always
// positive, but a negative input is still rendered sanely with a leading minus.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	b.Grow(len(whole) + len(whole)/3)
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	return sign + "$" + b.String() + frac
}
