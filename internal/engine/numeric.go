// Package engine implements the revenue attribution and commission
// distribution rules: ad-spend pro-ration over reporting windows, free-text
// channel attribution, marketing ROI aggregation, and the fee waterfall with
// per-agent payout splits. Every function here is a pure transformation of
// its inputs; persistence and HTTP live elsewhere.
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a money or percent field as entered by an operator
// into a decimal. Thousands separators, currency prefixes, and stray
// whitespace are stripped; empty or hopeless input yields zero. It never
// fails: a bad cell degrades to 0 instead of poisoning a subtotal.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-':
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// round is the single rounding rule for money: whole dollars, half away
// from zero.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
