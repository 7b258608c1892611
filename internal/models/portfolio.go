package models

import (
	"strings"
)

// EntryType represents the instrument type of a portfolio entry
type EntryType string

const (
	EntryTypeStock      EntryType = "stock"
	EntryTypeETF        EntryType = "etf"
	EntryTypeMutualFund EntryType = "mutualFund"
)

// ValidEntryTypes enumerates the accepted entry types for validation.
var ValidEntryTypes = map[EntryType]struct{}{
	EntryTypeStock:      {},
	EntryTypeETF:        {},
	EntryTypeMutualFund: {},
}

// PortfolioEntry is one user-specified portfolio line. Amount is the optional
// dollar amount invested; a nil Amount means "not specified". Type is
// informational only and does not alter the aggregation math.
type PortfolioEntry struct {
	Ticker string    `json:"ticker"`
	Amount *float64  `json:"amount,omitempty"`
	Type   EntryType `json:"type"`
}

// AmountOrZero returns the entry's dollar amount, treating absent as 0.
func (e PortfolioEntry) AmountOrZero() float64 {
	if e.Amount == nil {
		return 0
	}
	return *e.Amount
}

// NormalizedTicker returns the entry ticker trimmed and upper-cased.
func (e PortfolioEntry) NormalizedTicker() string {
	return strings.ToUpper(strings.TrimSpace(e.Ticker))
}

// WeightedEntry is a portfolio entry annotated with its normalized share of
// the portfolio. EffectiveWeight is a decimal in [0,1]; entries sum to 1
// unless the portfolio total is zero. EffectiveValue is the dollar value in
// amount mode and 0 in equal-weight mode.
type WeightedEntry struct {
	PortfolioEntry
	EffectiveWeight float64
	EffectiveValue  float64
}
