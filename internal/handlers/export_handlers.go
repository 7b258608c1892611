package handlers

import (
	"net/http"
	"time"

	"github.com/epeers/overlapalert/internal/export"
	"github.com/epeers/overlapalert/internal/models"
	"github.com/epeers/overlapalert/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles spreadsheet export endpoints
type ExportHandler struct {
	analysisSvc *services.AnalysisService
	now         func() time.Time
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(analysisSvc *services.AnalysisService) *ExportHandler {
	return &ExportHandler{
		analysisSvc: analysisSvc,
		now:         time.Now,
	}
}

// Export handles POST /export
// @Summary Export portfolio analysis as a spreadsheet
// @Description Run the analysis and stream it back as an xlsx workbook
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body models.AnalyzeRequest true "Portfolio entries"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /export [post]
func (h *ExportHandler) Export(c *gin.Context) {
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

	ctx, collector := services.NewDiagnosticContext(c.Request.Context())

	result, err := h.analysisSvc.Analyze(ctx, req.Entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	for _, d := range collector.GetDiagnostics() {
		log.WithField("code", string(d.Code)).Warn(d.Message)
	}

	analyzedAt := h.now()
	var totalValue float64
	for _, e := range req.Entries {
		if v := e.AmountOrZero(); v > 0 {
			totalValue += v
		}
	}

	wb, err := export.BuildWorkbook(export.ExportData{
		Entries:    req.Entries,
		Result:     result,
		AnalyzedAt: analyzedAt,
		TotalValue: totalValue,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(analyzedAt)+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if _, err := wb.WriteTo(c.Writer); err != nil {
		log.Errorf("Failed to stream workbook: %v", err)
	}
}
