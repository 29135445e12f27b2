// Package format renders money, phone numbers and dates for quotes and
// client records.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats amount in the ISO 4217 currency code for locale (a BCP 47
// tag such as "en-US"). The amount is rounded to the currency's standard
// number of decimals and grouped per locale; the symbol precedes the number.
func Currency(amount float64, code, locale string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("locale %q: %w", locale, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	p := message.NewPrinter(tag)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	return sign + p.Sprint(currency.Symbol(unit)) + p.Sprint(number.Decimal(amount, number.Scale(scale))), nil
}

// Formatter applies a fixed currency and locale.
type Formatter struct {
	Currency string
	Locale   string
}

// Money formats amount with the formatter's currency and locale.
func (f Formatter) Money(amount float64) (string, error) {
	return Currency(amount, f.Currency, f.Locale)
}
