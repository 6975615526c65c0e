package service

import (
	"context"

	"economics-api/internal/entity"
)

type EconomyService interface {
	// FetchIndicator returns (nil, nil) when the provider had no usable data;
	// a non-nil error only reports a dead request context.
	FetchIndicator(ctx context.Context, country, indicator string) (*entity.EconomicIndicator, error)
	CountryData(ctx context.Context, country string) (*entity.CountryEconomicData, error)
	ListCountries(ctx context.Context) ([]string, error)
	ProviderStatus(ctx context.Context) string
}
