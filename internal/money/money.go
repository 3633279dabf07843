// Package money converts between integer minor-unit amounts and formatted
// display strings. Amounts are int64 minor units everywhere; floating point
// never crosses this boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vladimir-e/personal-finance-system/engine/internal/domain"
)

// symbols maps well-known ISO codes to their display symbol. Codes without
// an entry render with the code itself as prefix.
var symbols = map[string]string{
	"USD": "$",
	"CAD": "$",
	"AUD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"INR": "₹",
}

func symbolFor(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

// Format renders an integer minor-unit amount as a display string: sign,
// currency symbol, thousands grouping, and exactly Precision fraction
// digits (none when Precision is zero). Examples for USD: 0 -> "$0.00",
// -1234567 -> "-$12,345.67".
func Format(amount int64, c domain.Currency) string {
	fixed := decimal.New(amount, -int32(c.Precision)).Abs().StringFixed(int32(c.Precision))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	b.WriteString(symbolFor(c.Code))
	b.WriteString(groupThousands(intPart))
	if c.Precision > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

// Parse converts display text back to integer minor units. Currency symbols,
// codes, grouping separators and whitespace are stripped; an optional
// leading sign and a bare fractional part ("-.50") are accepted. Short
// fractional input is padded with zeros, excess fractional digits beyond the
// currency's precision are truncated, not rounded. Text with no digit in it
// fails with domain.ErrInvalidInput.
func Parse(text string, c domain.Currency) (int64, error) {
	cleaned := stripNonNumeric(text)
	if !strings.ContainsAny(cleaned, "0123456789") {
		return 0, fmt.Errorf("%w: no amount in %q", domain.ErrInvalidInput, text)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed amount %q", domain.ErrInvalidInput, text)
	}
	// Shift into minor units, then drop whatever fraction is left. IntPart
	// truncates toward zero, which is exactly the digit-truncation the
	// contract asks for.
	return d.Shift(int32(c.Precision)).IntPart(), nil
}

// stripNonNumeric drops every rune that cannot take part in a plain decimal
// number: symbols, currency codes, grouping separators, whitespace.
func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
