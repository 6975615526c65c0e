package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"economics-api/internal/adapter/tradingeconomics"
	"economics-api/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Indicator labels as the provider spells them. The four together make up a
// country composite.
const (
	IndicatorInterestRate = "Interest Rate"
	IndicatorGDPGrowth    = "GDP Growth Rate"
	IndicatorInflation    = "Inflation Rate"
	IndicatorUnemployment = "Unemployment Rate"
)

// probeCountry backs the health check; any stable, data-rich country works.
const probeCountry = "United States"

type IndicatorService struct {
	provider tradingeconomics.ProviderClient
	logger   *logrus.Logger
}

func NewIndicatorService(provider tradingeconomics.ProviderClient, logger *logrus.Logger) *IndicatorService {
	return &IndicatorService{
		provider: provider,
		logger:   logger,
	}
}

// FetchIndicator asks the provider for the latest observation of one
// indicator. Provider failures and empty result sets are tolerated: they are
// logged and reported as (nil, nil), so a missing indicator cannot be
// mistaken for a crash. Only a dead request context comes back as an error.
func (s *IndicatorService) FetchIndicator(ctx context.Context, country, indicator string) (*entity.EconomicIndicator, error) {
	rows, err := s.provider.CountryIndicator(ctx, country, indicator)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warnf("Error fetching %s for %s: %v", indicator, country, err)
		return nil, nil
	}
	if len(rows) == 0 {
		s.logger.Warnf("No %s data for %s", indicator, country)
		return nil, nil
	}

	// most recent observation is the last row
	return convertRow(rows[len(rows)-1], country, indicator), nil
}

// CountryData aggregates the four tracked indicators for one country. The
// fetches run concurrently and independently; a tolerated failure just
// leaves its slot nil, so the composite only fails when the context dies.
func (s *IndicatorService) CountryData(ctx context.Context, country string) (*entity.CountryEconomicData, error) {
	var interestRate, gdpGrowth, inflationRate, unemploymentRate *entity.EconomicIndicator

	g, gctx := errgroup.WithContext(ctx)
	fetch := func(indicator string, slot **entity.EconomicIndicator) {
		g.Go(func() error {
			ind, err := s.FetchIndicator(gctx, country, indicator)
			if err != nil {
				return err
			}
			*slot = ind
			return nil
		})
	}

	fetch(IndicatorInterestRate, &interestRate)
	fetch(IndicatorGDPGrowth, &gdpGrowth)
	fetch(IndicatorInflation, &inflationRate)
	fetch(IndicatorUnemployment, &unemploymentRate)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.CountryEconomicData{
		Country:          country,
		InterestRate:     interestRate,
		GDPGrowth:        gdpGrowth,
		InflationRate:    inflationRate,
		UnemploymentRate: unemploymentRate,
		LastUpdated:      time.Now().Format(time.RFC3339),
	}, nil
}

// ListCountries returns the sorted, deduplicated country names the provider
// reports across all indicators.
func (s *IndicatorService) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := s.provider.AllIndicators(ctx)
	if err != nil {
		s.logger.Errorf("Error fetching countries: %v", err)
		return nil, fmt.Errorf("fetch countries: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	var countries []string
	for _, row := range rows {
		if row.Country == "" {
			continue
		}
		if _, ok := seen[row.Country]; ok {
			continue
		}
		seen[row.Country] = struct{}{}
		countries = append(countries, row.Country)
	}
	sort.Strings(countries)

	s.logger.Debugf("Provider reported %d countries", len(countries))
	return countries, nil
}

// ProviderStatus issues one test query and grades the provider connection.
func (s *IndicatorService) ProviderStatus(ctx context.Context) string {
	rows, err := s.provider.CountryIndicator(ctx, probeCountry, IndicatorInterestRate)
	if err != nil {
		s.logger.Warnf("Provider health probe failed: %v", err)
		return "error: " + err.Error()
	}
	if len(rows) == 0 {
		return "degraded"
	}
	return "healthy"
}

// convertRow maps a provider row onto the wire schema. The row wins for the
// country name when it carries one; empty provider strings become null.
func convertRow(row tradingeconomics.IndicatorRow, country, indicator string) *entity.EconomicIndicator {
	ind := &entity.EconomicIndicator{
		Country:       country,
		Indicator:     indicator,
		Value:         row.LatestValue,
		PreviousValue: row.PreviousValue,
	}
	if row.Country != "" {
		ind.Country = row.Country
	}
	if row.LatestValueDate != "" {
		ind.LastUpdate = &row.LatestValueDate
	}
	if row.Unit != "" {
		ind.Unit = &row.Unit
	}
	if row.Frequency != "" {
		ind.Frequency = &row.Frequency
	}
	return ind
}
