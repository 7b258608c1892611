package models

// DiagnosticCode categorizes non-fatal issues by subsystem.
// D1xxx = resolution, D2xxx = weighting.
type DiagnosticCode string

const (
	DiagUnresolvedTicker   DiagnosticCode = "D1001" // entry ticker unknown to the holdings source (entry skipped)
	DiagZeroValuePortfolio DiagnosticCode = "D2001" // amount mode with a zero total, all effective weights are 0
)

// Diagnostic represents a non-fatal issue encountered during an analysis run.
// Diagnostics are not part of AnalysisResult; callers observe them through
// the per-request collector and logs.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Message string         `json:"message"`
}
