package models

// AnalyzeRequest represents the request body for running an analysis
type AnalyzeRequest struct {
	Entries []PortfolioEntry `json:"entries" binding:"required"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FundResponse represents the response for a single holdings lookup
type FundResponse struct {
	Fund *FundData `json:"fund"`
}
