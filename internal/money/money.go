// Package money formats donation and expense amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is the unit all amounts are recorded in.
var Currency = currency.MustParseISO("LKR")

// Format renders amount as "LKR 1,500,000" using the grouping rules of tag.
// Fractions are rounded away; the site never shows cents.
func Format(amount decimal.Decimal, tag language.Tag) string {
	p := message.NewPrinter(tag)
	whole := amount.Round(0).IntPart()
	return Currency.String() + " " + p.Sprint(number.Decimal(whole, number.MaxFractionDigits(0)))
}

// Parse reads a user-entered amount. Thousands separators are allowed and
// blank input returns ok=false.
func Parse(raw string) (decimal.Decimal, bool, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero, false, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, true, nil
}
