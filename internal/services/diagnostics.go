package services

import (
	"context"
	"sync"

	"github.com/epeers/overlapalert/internal/models"
)

type diagnosticContextKey struct{}

// DiagnosticCollector accumulates non-fatal diagnostics during an analysis
// run. Unresolved tickers and degenerate portfolios are recorded here rather
// than in the AnalysisResult, so callers that care can inspect them while
// the result itself stays a pure value.
type DiagnosticCollector struct {
	mu          sync.Mutex
	diagnostics []models.Diagnostic
}

// NewDiagnosticContext returns a context carrying a fresh DiagnosticCollector,
// plus a reference to the collector so the handler can retrieve diagnostics later.
func NewDiagnosticContext(ctx context.Context) (context.Context, *DiagnosticCollector) {
	dc := &DiagnosticCollector{}
	return context.WithValue(ctx, diagnosticContextKey{}, dc), dc
}

// AddDiagnostic appends a diagnostic to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddDiagnostic(ctx context.Context, d models.Diagnostic) {
	dc, ok := ctx.Value(diagnosticContextKey{}).(*DiagnosticCollector)
	if !ok || dc == nil {
		return
	}
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.diagnostics = append(dc.diagnostics, d)
}

// GetDiagnostics returns all collected diagnostics.
func (dc *DiagnosticCollector) GetDiagnostics() []models.Diagnostic {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.diagnostics
}
