package entity

// EconomicIndicator is the latest observation of one indicator for one
// country. Pointer fields serialize as null when the provider had no data;
// the wire schema keeps them present rather than omitted.
type EconomicIndicator struct {
	Country       string   `json:"country"`
	Indicator     string   `json:"indicator"`
	Value         *float64 `json:"value"`
	PreviousValue *float64 `json:"previous_value"`
	LastUpdate    *string  `json:"last_update"`
	Unit          *string  `json:"unit"`
	Frequency     *string  `json:"frequency"`
}

// CountryEconomicData is the composite of the four tracked indicators for a
// single country. Any slot may be nil after a tolerated fetch failure.
type CountryEconomicData struct {
	Country          string             `json:"country"`
	InterestRate     *EconomicIndicator `json:"interest_rate"`
	GDPGrowth        *EconomicIndicator `json:"gdp_growth"`
	InflationRate    *EconomicIndicator `json:"inflation_rate"`
	UnemploymentRate *EconomicIndicator `json:"unemployment_rate"`
	LastUpdated      string             `json:"last_updated"`
}

type CurrencyPairData struct {
	BaseCurrency     string               `json:"base_currency"`
	QuoteCurrency    string               `json:"quote_currency"`
	BaseCountryData  *CountryEconomicData `json:"base_country_data"`
	QuoteCountryData *CountryEconomicData `json:"quote_country_data"`
}
