package services

import (
	"context"
	"fmt"

	"github.com/epeers/overlapalert/internal/models"
)

// NormalizeEntries converts portfolio entries into effective weights and
// dollar values. The weighting mode is a portfolio-wide decision:
//
// Amount mode applies when at least one entry has a positive amount. Each
// entry's weight is its amount (absent treated as 0) over the total. A zero
// total leaves every weight at 0, which downstream absorbs as "no
// contribution".
//
// Equal-weight mode applies otherwise: every entry gets 1/N and no dollar
// values are tracked.
//
// Returns the weighted entries, whether amount mode was used, and the total
// portfolio value (0 in equal-weight mode).
func NormalizeEntries(ctx context.Context, entries []models.PortfolioEntry) ([]models.WeightedEntry, bool, float64) {
	if len(entries) == 0 {
		return nil, false, 0
	}

	amountMode := false
	for _, e := range entries {
		if e.Amount != nil && *e.Amount > 0 {
			amountMode = true
			break
		}
	}

	weighted := make([]models.WeightedEntry, len(entries))

	if !amountMode {
		equalWeight := 1.0 / float64(len(entries))
		for i, e := range entries {
			weighted[i] = models.WeightedEntry{
				PortfolioEntry:  e,
				EffectiveWeight: equalWeight,
				EffectiveValue:  0,
			}
		}
		return weighted, false, 0
	}

	var totalValue float64
	for i, e := range entries {
		val := e.AmountOrZero()
		totalValue += val
		weighted[i] = models.WeightedEntry{
			PortfolioEntry: e,
			EffectiveValue: val,
		}
	}

	if totalValue > 0 {
		for i := range weighted {
			weighted[i].EffectiveWeight = weighted[i].EffectiveValue / totalValue
		}
	} else {
		AddDiagnostic(ctx, models.Diagnostic{
			Code:    models.DiagZeroValuePortfolio,
			Message: fmt.Sprintf("amount mode with zero total value across %d entries, all effective weights are 0", len(entries)),
		})
	}

	return weighted, true, totalValue
}
