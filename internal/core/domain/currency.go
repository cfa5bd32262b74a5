package domain

// BaseCurrencyCode anchors every rate in the registry.
const BaseCurrencyCode = "USD"

// Currency represents a supported display currency.
// Rate is how many units of this currency equal one unit of the base currency.
type Currency struct {
	Code   string  `json:"code"`   // e.g., "USD"
	Symbol string  `json:"symbol"` // e.g., "$"
	Name   string  `json:"name"`   // e.g., "US Dollar"
	Rate   float64 `json:"rate"`
}

// IsBase reports whether c is the base currency.
func (c Currency) IsBase() bool {
	return c.Code == BaseCurrencyCode
}

// supportedCurrencies is fixed at build time and never mutated.
var supportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar", Rate: 1},
	{Code: "EUR", Symbol: "€", Name: "Euro", Rate: 0.92},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Rate: 0.79},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Rate: 83.12},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", Rate: 1.36},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", Rate: 1.52},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", Rate: 151.5},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real", Rate: 5.05},
	{Code: "MXN", Symbol: "MX$", Name: "Mexican Peso", Rate: 16.8},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Rate: 3.67},
}

var currencyIndex = func() map[string]Currency {
	idx := make(map[string]Currency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		idx[c.Code] = c
	}
	return idx
}()

// SupportedCurrencies returns a copy of the registry, base currency first.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// LookupCurrency resolves a code against the registry.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencyIndex[code]
	return c, ok
}

// BaseCurrency returns the currency every rate is expressed against.
func BaseCurrency() Currency {
	return currencyIndex[BaseCurrencyCode]
}

// Convert converts amount from sourceCode into target via the base currency.
// Unknown source codes are treated as already being in the base currency.
// No rounding is applied; formatting is the caller's job.
func Convert(amount float64, sourceCode string, target Currency) float64 {
	if sourceCode == target.Code {
		return amount
	}

	sourceRate := 1.0
	if src, ok := currencyIndex[sourceCode]; ok {
		sourceRate = src.Rate
	}

	amountInBase := amount
	if sourceCode != BaseCurrencyCode {
		amountInBase = amount / sourceRate
	}
	return amountInBase * target.Rate
}
