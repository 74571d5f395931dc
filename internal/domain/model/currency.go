package model

// eurCountries lists the EU member states whose buyers are invoiced in EUR.
var eurCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// DefaultCurrency returns the settlement currency for a buyer country:
// EUR for EU member states, USD for everyone else.
func DefaultCurrency(buyerCountry string) string {
	if _, ok := eurCountries[buyerCountry]; ok {
		return "EUR"
	}
	return "USD"
}
