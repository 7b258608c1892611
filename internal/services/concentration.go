package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/epeers/overlapalert/internal/models"
)

// Concentration thresholds, as percentages of the portfolio.
const (
	holdingHighThreshold   = 20.0
	holdingMediumThreshold = 15.0
	holdingLowThreshold    = 10.0

	topThreeThreshold = 40.0

	sectorHighThreshold   = 65.0
	sectorMediumThreshold = 50.0
)

// ComputeWarnings applies the concentration rules to aggregated exposures
// and sector exposures. The rules are independent: a ticker can be flagged
// individually and also contribute to a top-3 or sector warning.
//
// It is a pure function and never fails; empty or all-zero inputs simply
// produce no warnings.
func ComputeWarnings(exposures []models.AggregatedExposure, sectors []models.SectorExposure) []models.ConcentrationWarning {
	var warnings []models.ConcentrationWarning

	// Rule 1: single-holding concentration. One warning per ticker, highest
	// qualifying tier wins.
	flagged := make(map[string]bool)
	for _, exp := range exposures {
		if flagged[exp.Ticker] {
			continue
		}
		pct := exp.TotalWeight * 100

		var severity models.Severity
		switch {
		case pct > holdingHighThreshold:
			severity = models.SeverityHigh
		case pct > holdingMediumThreshold:
			severity = models.SeverityMedium
		case pct > holdingLowThreshold:
			severity = models.SeverityLow
		default:
			continue
		}

		flagged[exp.Ticker] = true
		warnings = append(warnings, models.ConcentrationWarning{
			Ticker:     exp.Ticker,
			Percentage: pct,
			Severity:   severity,
			Message:    fmt.Sprintf("%s represents %.1f%% of your portfolio", exp.Ticker, pct),
		})
	}

	// Rule 2: top-3 concentration. Needs at least 3 distinct exposures.
	if len(exposures) >= 3 {
		var topWeight float64
		topTickers := make([]string, 0, 3)
		for _, exp := range exposures[:3] {
			topWeight += exp.TotalWeight
			topTickers = append(topTickers, exp.Ticker)
		}
		topPct := topWeight * 100
		if topPct > topThreeThreshold {
			warnings = append(warnings, models.ConcentrationWarning{
				Ticker:     models.TopThreeTicker,
				Percentage: topPct,
				Severity:   models.SeverityMedium,
				Message:    fmt.Sprintf("Your top 3 holdings (%s) represent %.1f%% of your portfolio", strings.Join(topTickers, ", "), topPct),
			})
		}
	}

	// Rule 3: sector concentration. No low tier; Unknown is never flagged.
	for _, sec := range sectors {
		if sec.Sector == models.UnknownSector {
			continue
		}
		pct := sec.Weight * 100

		var severity models.Severity
		switch {
		case pct > sectorHighThreshold:
			severity = models.SeverityHigh
		case pct > sectorMediumThreshold:
			severity = models.SeverityMedium
		default:
			continue
		}

		warnings = append(warnings, models.ConcentrationWarning{
			Ticker:     sec.Sector,
			Percentage: pct,
			Severity:   severity,
			Message:    fmt.Sprintf("%.1f%% of your portfolio is in %s", pct, sec.Sector),
		})
	}

	// Stable sort: equal severities keep generation order.
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Severity.Rank() < warnings[j].Severity.Rank()
	})

	return warnings
}
