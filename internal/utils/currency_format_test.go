package utils

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	lak, _ := domain.SupportedCurrency("LAK")
	thb, _ := domain.SupportedCurrency("THB")

	assert.Equal(t, "12", FormatWithCurrencyPrecision(decimal.RequireFromString("12.3456"), lak))
	assert.Equal(t, "12.35", FormatWithCurrencyPrecision(decimal.RequireFromString("12.3456"), thb))
	assert.Equal(t, "7.00", FormatWithCurrencyPrecision(decimal.NewFromInt(7), thb))
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		code   string
		want   string
	}{
		{"1250000", "LAK", "1,250,000 LAK"},
		{"999", "LAK", "999 LAK"},
		{"1234.5", "USD", "1,234.50 USD"},
		{"-45000", "LAK", "-45,000 LAK"},
		{"100", "XYZ", "100 LAK"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.amount), tt.code))
	}
}
