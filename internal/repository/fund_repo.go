package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/epeers/overlapalert/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrFundNotFound     = errors.New("fund not found")
	ErrSecurityNotFound = errors.New("security not found")
)

// FundRepository handles database operations for fund holdings data
type FundRepository struct {
	pool *pgxpool.Pool
}

// NewFundRepository creates a new FundRepository
func NewFundRepository(pool *pgxpool.Pool) *FundRepository {
	return &FundRepository{pool: pool}
}

// GetFund retrieves a fund and its ordered basket of holdings.
// Ticker matching is case-insensitive.
func (r *FundRepository) GetFund(ctx context.Context, ticker string) (*models.FundData, error) {
	query := `
		SELECT ticker, name, last_updated
		FROM fund
		WHERE ticker = UPPER($1)
	`
	fund := &models.FundData{}
	err := r.pool.QueryRow(ctx, query, ticker).Scan(&fund.Ticker, &fund.Name, &fund.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFundNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fund: %w", err)
	}

	holdings, err := r.getFundHoldings(ctx, fund.Ticker)
	if err != nil {
		return nil, err
	}
	fund.Holdings = holdings

	return fund, nil
}

// getFundHoldings retrieves the basket for a fund, preserving source order.
func (r *FundRepository) getFundHoldings(ctx context.Context, fundTicker string) ([]models.Holding, error) {
	query := `
		SELECT ticker, name, weight, COALESCE(sector, '')
		FROM fund_holding
		WHERE fund_ticker = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, fundTicker)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund holdings: %w", err)
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(&h.Ticker, &h.Name, &h.Weight, &h.Sector); err != nil {
			return nil, fmt.Errorf("failed to scan fund holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

// GetSecurity retrieves the name and sector for an individual security.
// Ticker matching is case-insensitive.
func (r *FundRepository) GetSecurity(ctx context.Context, ticker string) (*models.Holding, error) {
	query := `
		SELECT ticker, name, COALESCE(sector, '')
		FROM security
		WHERE ticker = UPPER($1)
	`
	h := &models.Holding{Weight: 1.0}
	err := r.pool.QueryRow(ctx, query, ticker).Scan(&h.Ticker, &h.Name, &h.Sector)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSecurityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get security: %w", err)
	}
	return h, nil
}
