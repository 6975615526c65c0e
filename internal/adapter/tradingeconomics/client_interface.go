package tradingeconomics

import "context"

type ProviderClient interface {
	CountryIndicator(ctx context.Context, country, indicator string) ([]IndicatorRow, error)
	AllIndicators(ctx context.Context) ([]IndicatorRow, error)
}
