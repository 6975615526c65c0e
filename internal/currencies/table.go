// Package currencies holds the static mapping between supported ISO 4217
// currency codes and the countries whose indicators back them.
package currencies

import (
	"strings"

	"golang.org/x/text/currency"
)

type mapping struct {
	Code    string
	Country string
}

// table order is canonical: /currencies reports codes in this order and the
// default country selection takes the first entries.
var table = []mapping{
	{"USD", "United States"},
	{"EUR", "Euro Area"},
	{"GBP", "United Kingdom"},
	{"JPY", "Japan"},
	{"CHF", "Switzerland"},
	{"CAD", "Canada"},
	{"AUD", "Australia"},
	{"NZD", "New Zealand"},
	{"SEK", "Sweden"},
	{"NOK", "Norway"},
	{"DKK", "Denmark"},
	{"PLN", "Poland"},
	{"CZK", "Czech Republic"},
	{"HUF", "Hungary"},
	{"SGD", "Singapore"},
	{"HKD", "Hong Kong"},
	{"KRW", "South Korea"},
	{"CNY", "China"},
	{"INR", "India"},
	{"BRL", "Brazil"},
	{"MXN", "Mexico"},
	{"ZAR", "South Africa"},
	{"RUB", "Russia"},
	{"TRY", "Turkey"},
}

var byCode = make(map[string]string, len(table))

func init() {
	for _, m := range table {
		byCode[m.Code] = m.Country
	}
}

// Codes returns the supported currency codes in table order.
func Codes() []string {
	codes := make([]string, len(table))
	for i, m := range table {
		codes[i] = m.Code
	}
	return codes
}

// Countries returns the mapped country names in table order.
func Countries() []string {
	countries := make([]string, len(table))
	for i, m := range table {
		countries[i] = m.Country
	}
	return countries
}

// CountryFor resolves an uppercase currency code to its issuing country.
func CountryFor(code string) (string, bool) {
	country, ok := byCode[code]
	return country, ok
}

// Normalize uppercases raw, checks it is a well-formed ISO 4217 code and
// that the table supports it. The normalized code is returned even when
// unsupported so callers can name it in error messages.
func Normalize(raw string) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code, false
	}
	code = unit.String()
	_, ok := byCode[code]
	return code, ok
}
