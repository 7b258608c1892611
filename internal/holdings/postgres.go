package holdings

import (
	"context"
	"errors"
	"time"

	"github.com/epeers/overlapalert/internal/models"
	"github.com/epeers/overlapalert/internal/repository"
)

// PostgresResolver resolves fund baskets from the fund and security tables.
// A ticker with no fund row falls back to the security table and is wrapped
// as a synthetic single-holding fund.
type PostgresResolver struct {
	fundRepo *repository.FundRepository
}

// NewPostgresResolver creates a resolver over the given repository.
func NewPostgresResolver(fundRepo *repository.FundRepository) *PostgresResolver {
	return &PostgresResolver{fundRepo: fundRepo}
}

// Resolve returns the fund data for a ticker. Tickers absent from both
// tables return (nil, nil); query failures propagate so the caller can tell
// a missing ticker from a broken database.
func (r *PostgresResolver) Resolve(ctx context.Context, ticker string) (*models.FundData, error) {
	fund, err := r.fundRepo.GetFund(ctx, ticker)
	if err == nil {
		return fund, nil
	}
	if !errors.Is(err, repository.ErrFundNotFound) {
		return nil, err
	}

	sec, err := r.fundRepo.GetSecurity(ctx, ticker)
	if err != nil {
		if errors.Is(err, repository.ErrSecurityNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &models.FundData{
		Ticker:      sec.Ticker,
		Name:        sec.Name,
		Holdings:    []models.Holding{*sec},
		LastUpdated: time.Now(),
	}, nil
}
