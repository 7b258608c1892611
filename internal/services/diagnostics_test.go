package services

import (
	"context"
	"sync"
	"testing"

	"github.com/epeers/overlapalert/internal/models"
)

func TestDiagnosticCollector_BasicUsage(t *testing.T) {
	ctx, dc := NewDiagnosticContext(context.Background())

	AddDiagnostic(ctx, models.Diagnostic{
		Code:    models.DiagUnresolvedTicker,
		Message: "test diagnostic 1",
	})
	AddDiagnostic(ctx, models.Diagnostic{
		Code:    models.DiagZeroValuePortfolio,
		Message: "test diagnostic 2",
	})

	diags := dc.GetDiagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}

	if diags[0].Code != models.DiagUnresolvedTicker {
		t.Errorf("expected code %s, got %s", models.DiagUnresolvedTicker, diags[0].Code)
	}
	if diags[1].Code != models.DiagZeroValuePortfolio {
		t.Errorf("expected code %s, got %s", models.DiagZeroValuePortfolio, diags[1].Code)
	}
}

func TestDiagnosticCollector_NoCollectorNoPanic(t *testing.T) {
	// AddDiagnostic with a plain context should not panic
	ctx := context.Background()
	AddDiagnostic(ctx, models.Diagnostic{
		Code:    models.DiagUnresolvedTicker,
		Message: "this should be silently dropped",
	})
}

func TestDiagnosticCollector_EmptyByDefault(t *testing.T) {
	_, dc := NewDiagnosticContext(context.Background())
	if diags := dc.GetDiagnostics(); len(diags) != 0 {
		t.Errorf("expected 0 diagnostics, got %d", len(diags))
	}
}

func TestDiagnosticCollector_ConcurrentSafe(t *testing.T) {
	ctx, dc := NewDiagnosticContext(context.Background())

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			AddDiagnostic(ctx, models.Diagnostic{
				Code:    models.DiagUnresolvedTicker,
				Message: "concurrent diagnostic",
			})
		}()
	}
	wg.Wait()

	if diags := dc.GetDiagnostics(); len(diags) != n {
		t.Errorf("expected %d diagnostics, got %d", n, len(diags))
	}
}
