package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols covers the currencies the backend currently emits.
// Anything else renders with its code as a prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmount renders a decimal amount for display, en-US style:
// FormatAmount(1234.56, "USD") == "$1,234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		if currency == "" {
			symbol = "$"
		} else {
			symbol = currency + " "
		}
	}

	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString(symbol)
	b.WriteString(groupThousands(intPart))
	b.WriteString(".")
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
