package alphavantage

// ETFProfileResponse represents the AlphaVantage ETF_PROFILE response
type ETFProfileResponse struct {
	NetAssets string       `json:"net_assets"`
	Holdings  []ETFHolding `json:"holdings"`
}

// ETFHolding represents a single ETF holding
type ETFHolding struct {
	Symbol string `json:"symbol"`
	Name   string `json:"description"`
	Weight string `json:"weight"`
}

// CompanyOverviewResponse represents the subset of the AlphaVantage OVERVIEW
// response needed to wrap a bare stock as a single-holding fund
type CompanyOverviewResponse struct {
	Symbol    string `json:"Symbol"`
	Name      string `json:"Name"`
	Sector    string `json:"Sector"`
	AssetType string `json:"AssetType"`
}

// ParsedETFHolding represents a parsed ETF holding with its weight in
// decimal form (0.0783 = 7.83%)
type ParsedETFHolding struct {
	Symbol     string
	Name       string
	Percentage float64
}

// ParsedCompanyOverview represents a parsed company overview
type ParsedCompanyOverview struct {
	Symbol string
	Name   string
	Sector string
}
