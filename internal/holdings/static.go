package holdings

import (
	"context"
	"strings"
	"time"

	"github.com/epeers/overlapalert/internal/models"
)

// StaticResolver serves fund baskets from a fixed in-memory table. It is the
// default backend when neither Postgres nor AlphaVantage is configured, and
// doubles as the fixture source in tests.
type StaticResolver struct {
	funds  map[string]models.FundData
	stocks map[string]stockInfo
}

type stockInfo struct {
	name   string
	sector string
}

// NewStaticResolver creates a StaticResolver preloaded with the built-in
// fund and stock tables.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		funds:  builtinFunds(),
		stocks: builtinStocks(),
	}
}

// Resolve returns the fund data for a ticker, or a synthetic single-holding
// fund for a known individual stock. Unknown tickers return (nil, nil).
func (r *StaticResolver) Resolve(_ context.Context, ticker string) (*models.FundData, error) {
	upper := strings.ToUpper(strings.TrimSpace(ticker))

	if fund, ok := r.funds[upper]; ok {
		return &fund, nil
	}

	if stock, ok := r.stocks[upper]; ok {
		return &models.FundData{
			Ticker: upper,
			Name:   stock.name,
			Holdings: []models.Holding{{
				Ticker: upper,
				Name:   stock.name,
				Weight: 1.0,
				Sector: stock.sector,
			}},
			LastUpdated: time.Now(),
		}, nil
	}

	return nil, nil
}

func builtinFunds() map[string]models.FundData {
	updated := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	return map[string]models.FundData{
		"VOO": {
			Ticker:      "VOO",
			Name:        "Vanguard S&P 500 ETF",
			LastUpdated: updated,
			Holdings: []models.Holding{
				{Ticker: "AAPL", Name: "Apple Inc.", Weight: 0.07, Sector: "Technology"},
				{Ticker: "MSFT", Name: "Microsoft Corp.", Weight: 0.07, Sector: "Technology"},
				{Ticker: "NVDA", Name: "Nvidia Corp.", Weight: 0.06, Sector: "Technology"},
				{Ticker: "AMZN", Name: "Amazon.com Inc.", Weight: 0.04, Sector: "Consumer Cyclical"},
				{Ticker: "GOOGL", Name: "Alphabet Inc. Class A", Weight: 0.04, Sector: "Communication Services"},
				{Ticker: "META", Name: "Meta Platforms Inc.", Weight: 0.025, Sector: "Communication Services"},
				{Ticker: "BRK.B", Name: "Berkshire Hathaway Inc.", Weight: 0.02, Sector: "Financials"},
				{Ticker: "JPM", Name: "JPMorgan Chase & Co.", Weight: 0.015, Sector: "Financials"},
				{Ticker: "LLY", Name: "Eli Lilly and Co.", Weight: 0.015, Sector: "Healthcare"},
				{Ticker: "UNH", Name: "UnitedHealth Group Inc.", Weight: 0.013, Sector: "Healthcare"},
				{Ticker: "V", Name: "Visa Inc.", Weight: 0.01, Sector: "Financials"},
				{Ticker: "XOM", Name: "Exxon Mobil Corp.", Weight: 0.01, Sector: "Energy"},
				{Ticker: "AVGO", Name: "Broadcom Inc.", Weight: 0.01, Sector: "Technology"},
				{Ticker: "MA", Name: "Mastercard Inc.", Weight: 0.01, Sector: "Financials"},
				{Ticker: "JNJ", Name: "Johnson & Johnson", Weight: 0.01, Sector: "Healthcare"},
			},
		},
		"QQQ": {
			Ticker:      "QQQ",
			Name:        "Invesco QQQ Trust",
			LastUpdated: updated,
			Holdings: []models.Holding{
				{Ticker: "AAPL", Name: "Apple Inc.", Weight: 0.09, Sector: "Technology"},
				{Ticker: "MSFT", Name: "Microsoft Corp.", Weight: 0.08, Sector: "Technology"},
				{Ticker: "NVDA", Name: "Nvidia Corp.", Weight: 0.07, Sector: "Technology"},
				{Ticker: "AMZN", Name: "Amazon.com Inc.", Weight: 0.05, Sector: "Consumer Cyclical"},
				{Ticker: "AVGO", Name: "Broadcom Inc.", Weight: 0.04, Sector: "Technology"},
				{Ticker: "META", Name: "Meta Platforms Inc.", Weight: 0.04, Sector: "Communication Services"},
				{Ticker: "GOOGL", Name: "Alphabet Inc. Class A", Weight: 0.03, Sector: "Communication Services"},
				{Ticker: "COST", Name: "Costco Wholesale Corp.", Weight: 0.025, Sector: "Consumer Defensive"},
				{Ticker: "TSLA", Name: "Tesla Inc.", Weight: 0.025, Sector: "Consumer Cyclical"},
				{Ticker: "NFLX", Name: "Netflix Inc.", Weight: 0.02, Sector: "Communication Services"},
			},
		},
	}
}

func builtinStocks() map[string]stockInfo {
	return map[string]stockInfo{
		"AAPL":  {name: "Apple Inc.", sector: "Technology"},
		"MSFT":  {name: "Microsoft Corp.", sector: "Technology"},
		"NVDA":  {name: "Nvidia Corp.", sector: "Technology"},
		"TSLA":  {name: "Tesla Inc.", sector: "Consumer Cyclical"},
		"AMZN":  {name: "Amazon.com Inc.", sector: "Consumer Cyclical"},
		"GOOGL": {name: "Alphabet Inc. Class A", sector: "Communication Services"},
		"META":  {name: "Meta Platforms Inc.", sector: "Communication Services"},
	}
}
