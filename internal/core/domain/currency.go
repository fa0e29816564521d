package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "LAK"
	Symbol       string `json:"symbol"`       // e.g., "₭"
	Name         string `json:"name"`         // e.g., "ກີບ"
	Precision    int    `json:"precision"`    // Decimal places shown, 0 for LAK
}

var supportedCurrencies = map[string]Currency{
	"LAK": {CurrencyCode: "LAK", Symbol: "₭", Name: "ກີບ", Precision: 0},
	"THB": {CurrencyCode: "THB", Symbol: "฿", Name: "ບາດ", Precision: 2},
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "ໂດລາ", Precision: 2},
}

// SupportedCurrency looks up a currency by its ISO code.
func SupportedCurrency(code string) (Currency, bool) {
	c, ok := supportedCurrencies[code]
	return c, ok
}

// CurrencyOrDefault returns the currency for code, falling back to LAK.
func CurrencyOrDefault(code string) Currency {
	if c, ok := supportedCurrencies[code]; ok {
		return c
	}
	return supportedCurrencies[DefaultCurrency]
}
