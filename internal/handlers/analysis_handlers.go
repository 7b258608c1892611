package handlers

import (
	"net/http"

	"github.com/epeers/overlapalert/internal/models"
	"github.com/epeers/overlapalert/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AnalysisHandler handles analysis endpoints
type AnalysisHandler struct {
	analysisSvc *services.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisSvc *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisSvc: analysisSvc,
	}
}

// validateEntries normalizes entry types in place and reports the first
// invalid one. An empty type defaults to etf.
func validateEntries(entries []models.PortfolioEntry) (string, bool) {
	for i, e := range entries {
		if e.Type == "" {
			entries[i].Type = models.EntryTypeETF
			continue
		}
		if _, ok := models.ValidEntryTypes[e.Type]; !ok {
			return string(e.Type), false
		}
	}
	return "", true
}

// Analyze handles POST /analyze
// @Summary Analyze portfolio overlap
// @Description Expand fund entries into underlying holdings, aggregate exposure per ticker and sector, and flag concentration
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "Portfolio entries"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	if badType, ok := validateEntries(req.Entries); !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid entry type: " + badType,
		})
		return
	}

	result, err := h.runAnalysis(c, req.Entries)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeCSV handles POST /analyze/csv
// @Summary Analyze a portfolio uploaded as CSV
// @Description Parse a CSV file with ticker, amount and type columns and run the same analysis as POST /analyze
// @Tags analysis
// @Accept mpfd
// @Produce json
// @Param file formData file true "Portfolio CSV"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /analyze/csv [post]
func (h *AnalysisHandler) AnalyzeCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "missing file upload: " + err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "failed to open uploaded file: " + err.Error(),
		})
		return
	}
	defer file.Close()

	entries, err := ParseEntriesCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	result, err := h.runAnalysis(c, entries)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, result)
}

// runAnalysis executes the analysis with a diagnostic collector attached and
// logs whatever diagnostics accumulated. On failure it writes the error
// response itself and returns a non-nil error so the caller can bail.
func (h *AnalysisHandler) runAnalysis(c *gin.Context, entries []models.PortfolioEntry) (*models.AnalysisResult, error) {
	ctx, collector := services.NewDiagnosticContext(c.Request.Context())

	result, err := h.analysisSvc.Analyze(ctx, entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return nil, err
	}

	for _, d := range collector.GetDiagnostics() {
		log.WithField("code", string(d.Code)).Warn(d.Message)
	}

	return result, nil
}
