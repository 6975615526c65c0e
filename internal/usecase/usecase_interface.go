package usecase

import (
	"context"

	"economics-api/internal/entity"
)

type EconomyUsecase interface {
	CountryIndicators(ctx context.Context, country string) (*entity.CountryEconomicData, error)
	CurrencyPair(ctx context.Context, base, quote string) (*entity.CurrencyPairData, error)
	AllCurrencyPairs(ctx context.Context) ([]entity.CurrencyPairData, error)
	IndicatorForCountries(ctx context.Context, indicator string, countries []string) ([]entity.EconomicIndicator, error)
	Countries(ctx context.Context) []string
	ProviderStatus(ctx context.Context) string
}
