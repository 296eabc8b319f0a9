package models

// Currency is an ISO-4217 currency code from the closed set the platform
// supports. Registration rejects anything outside this enumeration.
type Currency string

const (
	CurrencyKES Currency = "KES"
	CurrencyTZS Currency = "TZS"
	CurrencyUGX Currency = "UGX"
	CurrencyRWF Currency = "RWF"
	CurrencyETB Currency = "ETB"
	CurrencyNGN Currency = "NGN"
	CurrencyGHS Currency = "GHS"
	CurrencyZAR Currency = "ZAR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

var supportedCurrencies = map[Currency]struct{}{
	CurrencyKES: {},
	CurrencyTZS: {},
	CurrencyUGX: {},
	CurrencyRWF: {},
	CurrencyETB: {},
	CurrencyNGN: {},
	CurrencyGHS: {},
	CurrencyZAR: {},
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyGBP: {},
}

// IsValid reports whether c is in the supported set.
func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

func (c Currency) String() string { return string(c) }
