package holdings

import (
	"context"
	"strings"
	"time"

	"github.com/epeers/overlapalert/internal/alphavantage"
	"github.com/epeers/overlapalert/internal/models"
)

// AlphaVantageResolver resolves fund baskets through the AlphaVantage API.
// ETF_PROFILE supplies the basket for funds; OVERVIEW supplies the name and
// sector for a bare stock, which is wrapped as a single-holding fund.
//
// AlphaVantage's per-holding data carries no sector, so exposures expanded
// from a fund aggregate under "Unknown" unless the underlying ticker is also
// resolvable as a company.
type AlphaVantageResolver struct {
	client *alphavantage.Client
}

// NewAlphaVantageResolver creates a resolver backed by the given client.
func NewAlphaVantageResolver(client *alphavantage.Client) *AlphaVantageResolver {
	return &AlphaVantageResolver{client: client}
}

// Resolve looks up a ticker as an ETF first, then as an individual company.
// Unknown tickers return (nil, nil); transport failures propagate.
func (r *AlphaVantageResolver) Resolve(ctx context.Context, ticker string) (*models.FundData, error) {
	upper := strings.ToUpper(strings.TrimSpace(ticker))

	parsed, err := r.client.GetETFProfile(ctx, upper)
	if err != nil {
		return nil, err
	}

	if len(parsed) > 0 {
		holdings := make([]models.Holding, 0, len(parsed))
		for _, h := range parsed {
			holdings = append(holdings, models.Holding{
				Ticker: h.Symbol,
				Name:   h.Name,
				Weight: h.Percentage,
			})
		}
		return &models.FundData{
			Ticker:      upper,
			Name:        upper,
			Holdings:    holdings,
			LastUpdated: time.Now(),
		}, nil
	}

	overview, err := r.client.GetCompanyOverview(ctx, upper)
	if err != nil {
		return nil, err
	}
	if overview == nil {
		return nil, nil
	}

	return &models.FundData{
		Ticker: upper,
		Name:   overview.Name,
		Holdings: []models.Holding{{
			Ticker: upper,
			Name:   overview.Name,
			Weight: 1.0,
			Sector: overview.Sector,
		}},
		LastUpdated: time.Now(),
	}, nil
}
