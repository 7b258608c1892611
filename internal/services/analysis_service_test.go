package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/epeers/overlapalert/internal/holdings"
	"github.com/epeers/overlapalert/internal/models"
)

func assertClose(t *testing.T, name string, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s: got %.6f, want %.6f (epsilon %.6f)", name, got, want, epsilon)
	}
}

func amount(v float64) *float64 {
	return &v
}

func newStaticService() *AnalysisService {
	return NewAnalysisService(holdings.NewStaticResolver())
}

func findExposure(exposures []models.AggregatedExposure, ticker string) *models.AggregatedExposure {
	for i := range exposures {
		if exposures[i].Ticker == ticker {
			return &exposures[i]
		}
	}
	return nil
}

func findSector(sectors []models.SectorExposure, name string) *models.SectorExposure {
	for i := range sectors {
		if sectors[i].Sector == name {
			return &sectors[i]
		}
	}
	return nil
}

func TestAnalyze_SingleFundEqualWeight(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "VOO", Type: models.EntryTypeETF},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Exposures) != 15 {
		t.Fatalf("expected 15 exposures, got %d", len(result.Exposures))
	}

	// With a single entry the fund's own basket weights pass through.
	aapl := findExposure(result.Exposures, "AAPL")
	if aapl == nil {
		t.Fatal("expected AAPL in exposures")
	}
	assertClose(t, "AAPL weight", aapl.TotalWeight, 0.07, 1e-9)
	if aapl.DollarExposure != nil {
		t.Errorf("expected no dollar exposure in equal-weight mode, got %v", *aapl.DollarExposure)
	}
	if len(aapl.Sources) != 1 || aapl.Sources[0].Fund != "VOO" {
		t.Errorf("expected single VOO source, got %+v", aapl.Sources)
	}

	msft := findExposure(result.Exposures, "MSFT")
	if msft == nil {
		t.Fatal("expected MSFT in exposures")
	}
	assertClose(t, "MSFT weight", msft.TotalWeight, 0.07, 1e-9)

	// Equal-weight mode reports the count of distinct exposures.
	assertClose(t, "TotalAnalyzed", result.TotalAnalyzed, 15, 1e-9)
}

func TestAnalyze_TwoFundsAmountMode(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "VOO", Amount: amount(10000), Type: models.EntryTypeETF},
		{Ticker: "QQQ", Amount: amount(5000), Type: models.EntryTypeETF},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assertClose(t, "TotalAnalyzed", result.TotalAnalyzed, 15000, 1e-9)

	// AAPL appears in both funds:
	// via VOO: 0.07 * (10000/15000), via QQQ: 0.09 * (5000/15000)
	aapl := findExposure(result.Exposures, "AAPL")
	if aapl == nil {
		t.Fatal("expected AAPL in exposures")
	}
	wantWeight := 0.07*(10000.0/15000.0) + 0.09*(5000.0/15000.0)
	assertClose(t, "AAPL weight", aapl.TotalWeight, wantWeight, 1e-9)

	if aapl.DollarExposure == nil {
		t.Fatal("expected dollar exposure in amount mode")
	}
	// 0.07 * 10000 + 0.09 * 5000
	assertClose(t, "AAPL dollars", *aapl.DollarExposure, 1150, 1e-6)

	if len(aapl.Sources) != 2 {
		t.Fatalf("expected 2 sources for AAPL, got %d", len(aapl.Sources))
	}
	if aapl.Sources[0].Fund != "VOO" || aapl.Sources[1].Fund != "QQQ" {
		t.Errorf("expected sources in entry order [VOO QQQ], got %+v", aapl.Sources)
	}
	assertClose(t, "AAPL VOO contribution", aapl.Sources[0].Contribution, 0.07*(10000.0/15000.0), 1e-9)
	assertClose(t, "AAPL QQQ contribution", aapl.Sources[1].Contribution, 0.09*(5000.0/15000.0), 1e-9)

	// NFLX is QQQ-only.
	nflx := findExposure(result.Exposures, "NFLX")
	if nflx == nil {
		t.Fatal("expected NFLX in exposures")
	}
	if len(nflx.Sources) != 1 || nflx.Sources[0].Fund != "QQQ" {
		t.Errorf("expected single QQQ source for NFLX, got %+v", nflx.Sources)
	}
}

func TestAnalyze_ExposuresSortedByWeightDesc(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "VOO", Amount: amount(10000)},
		{Ticker: "QQQ", Amount: amount(5000)},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i := 1; i < len(result.Exposures); i++ {
		if result.Exposures[i].TotalWeight > result.Exposures[i-1].TotalWeight {
			t.Fatalf("exposures not sorted descending at index %d: %.6f > %.6f",
				i, result.Exposures[i].TotalWeight, result.Exposures[i-1].TotalWeight)
		}
	}

	for i := 1; i < len(result.SectorExposures); i++ {
		if result.SectorExposures[i].Weight > result.SectorExposures[i-1].Weight {
			t.Fatalf("sectors not sorted descending at index %d", i)
		}
	}
}

func TestAnalyze_WeightConservation(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "AAPL", Amount: amount(2500)},
		{Ticker: "MSFT", Amount: amount(7500)},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Synthetic single-holding funds expand at weight 1.0, so exposure
	// weights must sum to exactly the portfolio.
	var total float64
	for _, exp := range result.Exposures {
		total += exp.TotalWeight
	}
	assertClose(t, "total exposure weight", total, 1.0, 1e-9)

	var sectorTotal float64
	for _, sec := range result.SectorExposures {
		sectorTotal += sec.Weight
	}
	assertClose(t, "total sector weight", sectorTotal, 1.0, 1e-9)
}

func TestAnalyze_SingleStockFullConcentration(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "AAPL", Type: models.EntryTypeStock},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(result.Exposures) != 1 {
		t.Fatalf("expected 1 exposure, got %d", len(result.Exposures))
	}
	assertClose(t, "AAPL weight", result.Exposures[0].TotalWeight, 1.0, 1e-9)

	tech := findSector(result.SectorExposures, "Technology")
	if tech == nil {
		t.Fatal("expected Technology sector")
	}
	assertClose(t, "Technology weight", tech.Weight, 1.0, 1e-9)

	// One holding warning plus one sector warning, both high.
	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %+v", len(result.Warnings), result.Warnings)
	}
	if result.Warnings[0].Ticker != "AAPL" || result.Warnings[0].Severity != models.SeverityHigh {
		t.Errorf("unexpected first warning: %+v", result.Warnings[0])
	}
	if result.Warnings[0].Message != "AAPL represents 100.0% of your portfolio" {
		t.Errorf("unexpected message: %q", result.Warnings[0].Message)
	}
	if result.Warnings[1].Ticker != "Technology" || result.Warnings[1].Severity != models.SeverityHigh {
		t.Errorf("unexpected second warning: %+v", result.Warnings[1])
	}
	if result.Warnings[1].Message != "100.0% of your portfolio is in Technology" {
		t.Errorf("unexpected message: %q", result.Warnings[1].Message)
	}
}

func TestAnalyze_UnknownTickerSkippedWithDiagnostic(t *testing.T) {
	svc := newStaticService()
	ctx, collector := NewDiagnosticContext(context.Background())

	result, err := svc.Analyze(ctx, []models.PortfolioEntry{
		{Ticker: "VOO", Amount: amount(1000)},
		{Ticker: "ZZZZ", Amount: amount(1000)},
	})
	if err != nil {
		t.Fatalf("unknown ticker must not fail the analysis, got %v", err)
	}

	// ZZZZ contributes nothing: only VOO's half of the portfolio expands.
	var total float64
	for _, exp := range result.Exposures {
		total += exp.TotalWeight
	}
	if total >= 0.5 {
		t.Errorf("expected exposure total below 0.5, got %.6f", total)
	}

	diags := collector.GetDiagnostics()
	found := false
	for _, d := range diags {
		if d.Code == models.DiagUnresolvedTicker {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s diagnostic, got %+v", models.DiagUnresolvedTicker, diags)
	}

	// The unknown ticker still counted toward the total value.
	assertClose(t, "TotalAnalyzed", result.TotalAnalyzed, 2000, 1e-9)
}

func TestAnalyze_EmptyEntries(t *testing.T) {
	svc := newStaticService()

	for _, entries := range [][]models.PortfolioEntry{
		nil,
		{},
		{{Ticker: ""}, {Ticker: "   "}},
	} {
		result, err := svc.Analyze(context.Background(), entries)
		if err != nil {
			t.Fatalf("expected no error for empty input, got %v", err)
		}
		if len(result.Exposures) != 0 || len(result.SectorExposures) != 0 || len(result.Warnings) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
		if result.TotalAnalyzed != 0 {
			t.Errorf("expected TotalAnalyzed 0, got %f", result.TotalAnalyzed)
		}
	}
}

func TestAnalyze_TickerCaseInsensitive(t *testing.T) {
	svc := newStaticService()

	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "  voo "},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Exposures) != 15 {
		t.Fatalf("expected lowercase ticker to resolve, got %d exposures", len(result.Exposures))
	}
	if result.Exposures[0].Sources[0].Fund != "VOO" {
		t.Errorf("expected normalized source ticker VOO, got %q", result.Exposures[0].Sources[0].Fund)
	}
}

func TestAnalyze_UnknownSectorBucket(t *testing.T) {
	svc := newStaticService()

	// VOO contains constituents (BRK.B, JPM, ...) that only exist inside the
	// basket, so the sector pass cannot re-resolve them.
	result, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "VOO"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	unknown := findSector(result.SectorExposures, models.UnknownSector)
	if unknown == nil {
		t.Fatal("expected an Unknown sector bucket")
	}
	// BRK.B 0.02 + JPM 0.015 + LLY 0.015 + UNH 0.013 + V 0.01 + XOM 0.01 +
	// AVGO 0.01 + MA 0.01 + JNJ 0.01
	assertClose(t, "Unknown weight", unknown.Weight, 0.113, 1e-9)
}

func TestAnalyze_Idempotent(t *testing.T) {
	svc := newStaticService()
	entries := []models.PortfolioEntry{
		{Ticker: "VOO", Amount: amount(10000)},
		{Ticker: "QQQ", Amount: amount(5000)},
	}

	first, err := svc.Analyze(context.Background(), entries)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.Analyze(context.Background(), entries)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(first.Exposures) != len(second.Exposures) {
		t.Fatalf("exposure counts differ: %d vs %d", len(first.Exposures), len(second.Exposures))
	}
	for i := range first.Exposures {
		if first.Exposures[i].Ticker != second.Exposures[i].Ticker {
			t.Errorf("exposure order differs at %d: %s vs %s",
				i, first.Exposures[i].Ticker, second.Exposures[i].Ticker)
		}
		assertClose(t, "weight "+first.Exposures[i].Ticker,
			second.Exposures[i].TotalWeight, first.Exposures[i].TotalWeight, 1e-12)
	}
}

type failingResolver struct {
	err error
}

func (r *failingResolver) Resolve(_ context.Context, _ string) (*models.FundData, error) {
	return nil, r.err
}

func TestAnalyze_ResolverErrorAborts(t *testing.T) {
	backendErr := errors.New("connection refused")
	svc := NewAnalysisService(&failingResolver{err: backendErr})

	_, err := svc.Analyze(context.Background(), []models.PortfolioEntry{
		{Ticker: "VOO"},
	})
	if err == nil {
		t.Fatal("expected error when resolver backend fails")
	}
	if !errors.Is(err, backendErr) {
		t.Errorf("expected wrapped backend error, got %v", err)
	}
}
