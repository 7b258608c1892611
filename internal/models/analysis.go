package models

// Severity classifies how serious a concentration warning is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns the sort rank of a severity: high=0, medium=1, low=2.
// Warnings are ordered by rank, most severe first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// TopThreeTicker is the sentinel ticker used for the combined top-3
// concentration warning, which has no single security attached.
const TopThreeTicker = "TOP3"

// ExposureSource records one fund's contribution to an aggregated exposure.
// Contribution is the portfolio-level weight contributed by that fund.
type ExposureSource struct {
	Fund         string  `json:"fund"`
	Contribution float64 `json:"contribution"`
}

// AggregatedExposure is the merged look-through exposure to a single
// underlying security across every fund in the portfolio. DollarExposure is
// nil in equal-weight mode. Sources preserves the order contributions were
// discovered and is not deduplicated.
type AggregatedExposure struct {
	Ticker         string           `json:"ticker"`
	Name           string           `json:"name"`
	TotalWeight    float64          `json:"total_weight"`
	DollarExposure *float64         `json:"dollar_exposure,omitempty"`
	Sources        []ExposureSource `json:"sources"`
}

// SectorExposure is the summed exposure per sector. Securities whose sector
// can't be recovered are grouped under "Unknown".
type SectorExposure struct {
	Sector         string   `json:"sector"`
	Weight         float64  `json:"weight"`
	DollarExposure *float64 `json:"dollar_exposure,omitempty"`
}

// UnknownSector groups aggregated exposures whose sector could not be
// recovered from the holdings data.
const UnknownSector = "Unknown"

// ConcentrationWarning is a rule-engine alert that a single security, the
// top-3 group, or a sector exceeds a fixed threshold. Ticker holds the
// security ticker, the sector name, or the TopThreeTicker sentinel.
// Percentage is 0-100.
type ConcentrationWarning struct {
	Ticker     string   `json:"ticker"`
	Percentage float64  `json:"percentage"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
}

// AnalysisResult is the engine's sole output. Exposures are sorted descending
// by total weight, sector exposures descending by weight, and warnings by
// severity rank (high first). TotalAnalyzed is the total dollar value in
// amount mode, otherwise the number of distinct exposures.
type AnalysisResult struct {
	Exposures       []AggregatedExposure   `json:"exposures"`
	SectorExposures []SectorExposure       `json:"sector_exposures"`
	Warnings        []ConcentrationWarning `json:"warnings"`
	TotalAnalyzed   float64                `json:"total_analyzed"`
}
