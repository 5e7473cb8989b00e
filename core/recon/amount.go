package recon

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyStripper removes grouping commas and common currency symbols
// ahead of numeric parsing.
var currencyStripper = strings.NewReplacer(
	",", "",
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
)

// ParseAmount parses a raw field value into a decimal amount. Leading and
// trailing whitespace, internal whitespace, grouping commas, and the currency
// symbols ₹ $ € £ are stripped before parsing. The boolean reports whether
// the remainder was a parseable number; blank values fail.
func ParseAmount(value string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return decimal.Zero, false
	}

	s = currencyStripper.Replace(s)
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
