package usecase

import (
	"context"
	"errors"
	"fmt"

	"economics-api/internal/currencies"
	"economics-api/internal/entity"
	"economics-api/internal/service"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// ErrCurrencyNotSupported marks a currency code outside the static table.
// The route layer maps it to 404.
var ErrCurrencyNotSupported = errors.New("not supported")

// defaultCountryLimit caps the default country selection of the
// per-indicator list endpoints.
const defaultCountryLimit = 10

// Sweep dimensions for AllCurrencyPairs: each base against the major quote
// currencies, identity pairs excluded.
var (
	sweepBases  = []string{"USD", "EUR", "GBP"}
	sweepQuotes = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD"}
)

type IndicatorUsecase struct {
	service service.EconomyService
	logger  *logrus.Logger
}

func NewIndicatorUsecase(service service.EconomyService, logger *logrus.Logger) *IndicatorUsecase {
	return &IndicatorUsecase{
		service: service,
		logger:  logger,
	}
}

func (uc *IndicatorUsecase) CountryIndicators(ctx context.Context, country string) (*entity.CountryEconomicData, error) {
	return uc.service.CountryData(ctx, country)
}

// CurrencyPair validates both codes against the static table, resolves the
// issuing countries and aggregates each in turn. Unsupported codes come back
// wrapped in ErrCurrencyNotSupported before any provider call is made.
func (uc *IndicatorUsecase) CurrencyPair(ctx context.Context, base, quote string) (*entity.CurrencyPairData, error) {
	baseCode, ok := currencies.Normalize(base)
	if !ok {
		uc.logger.Warnf("Unsupported base currency: %s", baseCode)
		return nil, fmt.Errorf("currency %s %w", baseCode, ErrCurrencyNotSupported)
	}
	quoteCode, ok := currencies.Normalize(quote)
	if !ok {
		uc.logger.Warnf("Unsupported quote currency: %s", quoteCode)
		return nil, fmt.Errorf("currency %s %w", quoteCode, ErrCurrencyNotSupported)
	}

	baseCountry, _ := currencies.CountryFor(baseCode)
	quoteCountry, _ := currencies.CountryFor(quoteCode)

	baseData, err := uc.service.CountryData(ctx, baseCountry)
	if err != nil {
		uc.logger.Errorf("Error fetching currency pair data: %v", err)
		return nil, fmt.Errorf("aggregate %s: %w", baseCountry, err)
	}
	quoteData, err := uc.service.CountryData(ctx, quoteCountry)
	if err != nil {
		uc.logger.Errorf("Error fetching currency pair data: %v", err)
		return nil, fmt.Errorf("aggregate %s: %w", quoteCountry, err)
	}

	return &entity.CurrencyPairData{
		BaseCurrency:     baseCode,
		QuoteCurrency:    quoteCode,
		BaseCountryData:  baseData,
		QuoteCountryData: quoteData,
	}, nil
}

// AllCurrencyPairs walks the fixed base×quote sweep. A failing combination
// is logged and skipped, never fatal; only a dead context aborts the walk.
func (uc *IndicatorUsecase) AllCurrencyPairs(ctx context.Context) ([]entity.CurrencyPairData, error) {
	pairs := make([]entity.CurrencyPairData, 0, len(sweepBases)*len(sweepQuotes))

	var sweepErrs error
	for _, base := range sweepBases {
		for _, quote := range sweepQuotes {
			if base == quote {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			pair, err := uc.CurrencyPair(ctx, base, quote)
			if err != nil {
				uc.logger.Warnf("Error fetching pair %s/%s: %v", base, quote, err)
				sweepErrs = multierr.Append(sweepErrs, fmt.Errorf("%s/%s: %w", base, quote, err))
				continue
			}
			pairs = append(pairs, *pair)
		}
	}

	if sweepErrs != nil {
		uc.logger.Warnf("Pair sweep finished with %d failed combinations: %v", len(multierr.Errors(sweepErrs)), sweepErrs)
	}
	return pairs, nil
}

// IndicatorForCountries fetches one indicator across the given countries,
// defaulting to the first ten table countries. Countries whose fetch failed
// are omitted from the result, not null-filled.
func (uc *IndicatorUsecase) IndicatorForCountries(ctx context.Context, indicator string, countries []string) ([]entity.EconomicIndicator, error) {
	if len(countries) == 0 {
		countries = currencies.Countries()[:defaultCountryLimit]
	}

	results := make([]entity.EconomicIndicator, 0, len(countries))
	for _, country := range countries {
		ind, err := uc.service.FetchIndicator(ctx, country, indicator)
		if err != nil {
			return nil, err
		}
		if ind == nil {
			continue
		}
		results = append(results, *ind)
	}
	return results, nil
}

// Countries lists provider-reported country names, falling back to the
// static table's values when the provider is unavailable or empty.
func (uc *IndicatorUsecase) Countries(ctx context.Context) []string {
	countries, err := uc.service.ListCountries(ctx)
	if err != nil {
		uc.logger.Errorf("Falling back to static country list: %v", err)
		return currencies.Countries()
	}
	if len(countries) == 0 {
		uc.logger.Warn("Provider returned no countries, using static list")
		return currencies.Countries()
	}
	return countries
}

func (uc *IndicatorUsecase) ProviderStatus(ctx context.Context) string {
	return uc.service.ProviderStatus(ctx)
}
