package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/epeers/overlapalert/internal/holdings"
	"github.com/epeers/overlapalert/internal/models"
	log "github.com/sirupsen/logrus"
)

// AnalysisService computes look-through exposure for a set of portfolio
// entries: each fund entry is expanded into its basket of underlying
// holdings, contributions are merged per underlying ticker, rolled up per
// sector, and checked against the concentration rules.
type AnalysisService struct {
	resolver holdings.Resolver
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(resolver holdings.Resolver) *AnalysisService {
	return &AnalysisService{resolver: resolver}
}

// exposureBuilder accumulates contributions to one underlying security
// during the exposure pass. The map of builders is scoped to a single
// Analyze call and discarded afterwards.
type exposureBuilder struct {
	ticker      string
	name        string
	totalWeight float64
	dollar      float64
	sources     []models.ExposureSource
}

// Analyze runs a full analysis over the given entries.
//
// Entries with blank tickers are dropped up front; if nothing survives, a
// defined empty result is returned, not an error. Entries whose ticker the
// resolver doesn't know contribute nothing and are recorded as diagnostics.
// A resolver backend failure aborts the run: callers must be able to tell
// "ticker unknown" from "holdings source down".
func (s *AnalysisService) Analyze(ctx context.Context, entries []models.PortfolioEntry) (*models.AnalysisResult, error) {
	defer TrackTime("Analyze", time.Now())

	valid := make([]models.PortfolioEntry, 0, len(entries))
	for _, e := range entries {
		ticker := e.NormalizedTicker()
		if ticker == "" {
			continue
		}
		e.Ticker = ticker
		valid = append(valid, e)
	}

	if len(valid) == 0 {
		return &models.AnalysisResult{
			Exposures:       []models.AggregatedExposure{},
			SectorExposures: []models.SectorExposure{},
			Warnings:        []models.ConcentrationWarning{},
			TotalAnalyzed:   0,
		}, nil
	}

	weighted, amountMode, totalValue := NormalizeEntries(ctx, valid)

	exposures, err := s.aggregateExposures(ctx, weighted, amountMode)
	if err != nil {
		return nil, err
	}

	sectors, err := s.aggregateSectors(ctx, exposures)
	if err != nil {
		return nil, err
	}

	warnings := ComputeWarnings(exposures, sectors)

	// In amount mode the caller gets the total dollar value analyzed; in
	// equal-weight mode (or a degenerate zero-value portfolio) the count of
	// distinct underlying exposures.
	totalAnalyzed := totalValue
	if totalAnalyzed == 0 {
		totalAnalyzed = float64(len(exposures))
	}

	return &models.AnalysisResult{
		Exposures:       exposures,
		SectorExposures: sectors,
		Warnings:        warnings,
		TotalAnalyzed:   totalAnalyzed,
	}, nil
}

// aggregateExposures expands each weighted entry through the resolver and
// merges per-underlying contributions. Insertion order is kept so the final
// descending-weight sort breaks ties by first appearance.
func (s *AnalysisService) aggregateExposures(ctx context.Context, weighted []models.WeightedEntry, amountMode bool) ([]models.AggregatedExposure, error) {
	builders := make(map[string]*exposureBuilder)
	var order []string

	for _, entry := range weighted {
		fund, err := s.resolver.Resolve(ctx, entry.Ticker)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", entry.Ticker, err)
		}
		if fund == nil {
			log.Warnf("No holdings data found for ticker: %s", entry.Ticker)
			AddDiagnostic(ctx, models.Diagnostic{
				Code:    models.DiagUnresolvedTicker,
				Message: fmt.Sprintf("no holdings data for ticker %s, entry skipped", entry.Ticker),
			})
			continue
		}

		for _, h := range fund.Holdings {
			contributionWeight := h.Weight * entry.EffectiveWeight

			b, exists := builders[h.Ticker]
			if !exists {
				b = &exposureBuilder{ticker: h.Ticker, name: h.Name}
				builders[h.Ticker] = b
				order = append(order, h.Ticker)
			}
			b.totalWeight += contributionWeight
			if amountMode {
				b.dollar += h.Weight * entry.EffectiveValue
			}
			b.sources = append(b.sources, models.ExposureSource{
				Fund:         entry.Ticker,
				Contribution: contributionWeight,
			})
		}
	}

	exposures := make([]models.AggregatedExposure, 0, len(order))
	for _, ticker := range order {
		b := builders[ticker]
		exp := models.AggregatedExposure{
			Ticker:      b.ticker,
			Name:        b.name,
			TotalWeight: b.totalWeight,
			Sources:     b.sources,
		}
		if amountMode {
			dollar := b.dollar
			exp.DollarExposure = &dollar
		}
		exposures = append(exposures, exp)
	}

	sort.SliceStable(exposures, func(i, j int) bool {
		return exposures[i].TotalWeight > exposures[j].TotalWeight
	})

	return exposures, nil
}

// aggregateSectors re-resolves each aggregated ticker to recover its sector
// and sums exposure per sector. The resolver is consulted once per distinct
// ticker; with the cached resolver in front this second sweep hits memory.
// Tickers whose sector can't be recovered (e.g. a basket constituent the
// data source only knows as part of a fund) land in "Unknown".
func (s *AnalysisService) aggregateSectors(ctx context.Context, exposures []models.AggregatedExposure) ([]models.SectorExposure, error) {
	type sectorBuilder struct {
		weight    float64
		dollar    float64
		hasDollar bool
	}

	builders := make(map[string]*sectorBuilder)
	var order []string

	for _, exp := range exposures {
		fund, err := s.resolver.Resolve(ctx, exp.Ticker)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve sector for %s: %w", exp.Ticker, err)
		}

		sector := models.UnknownSector
		if fund != nil {
			for _, h := range fund.Holdings {
				if h.Ticker == exp.Ticker && h.Sector != "" {
					sector = h.Sector
					break
				}
			}
		}

		b, exists := builders[sector]
		if !exists {
			b = &sectorBuilder{hasDollar: exp.DollarExposure != nil}
			builders[sector] = b
			order = append(order, sector)
		}
		b.weight += exp.TotalWeight
		if b.hasDollar && exp.DollarExposure != nil {
			b.dollar += *exp.DollarExposure
		}
	}

	sectors := make([]models.SectorExposure, 0, len(order))
	for _, name := range order {
		b := builders[name]
		se := models.SectorExposure{
			Sector: name,
			Weight: b.weight,
		}
		if b.hasDollar {
			dollar := b.dollar
			se.DollarExposure = &dollar
		}
		sectors = append(sectors, se)
	}

	sort.SliceStable(sectors, func(i, j int) bool {
		return sectors[i].Weight > sectors[j].Weight
	})

	return sectors, nil
}
