// Package pricefmt parses and formats song prices.
package pricefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

// Parse parses a price string as a finite, non-negative decimal number.
// Surrounding whitespace is ignored.
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("expected a decimal number, got '%s'", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("expected a finite number, got '%s'", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("price must not be negative, got '%s'", s)
	}
	return v, nil
}

// Format renders a price in its shortest decimal form (1.29, 2, 0.5).
// Parse(Format(v)) == v for every value Parse accepts.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Display renders a price for humans using the ISO currency code, e.g. "$ 1.29".
// An unknown code falls back to DefaultCurrency.
func Display(v float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(language.English)
	return p.Sprint(currency.Symbol(unit.Amount(v)))
}
