package utils

import (
	"strings"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with THB (precision 2) returns "12.35"
// Example: amount 12.3456 with LAK (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Precision))
}

// FormatAmount renders an amount with thousands separators and the currency
// code, e.g. "1,250,000 LAK" or "12.50 USD".
func FormatAmount(amount decimal.Decimal, code string) string {
	currency := domain.CurrencyOrDefault(code)
	return GroupThousands(FormatWithCurrencyPrecision(amount, currency)) + " " + currency.CurrencyCode
}

// GroupThousands inserts comma separators into the integer part of a
// plain decimal string.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		return sign + b.String() + "." + frac
	}
	return sign + b.String()
}
