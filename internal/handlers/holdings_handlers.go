package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/epeers/overlapalert/internal/holdings"
	"github.com/epeers/overlapalert/internal/models"
	"github.com/gin-gonic/gin"
)

// HoldingsHandler handles fund holdings lookup endpoints
type HoldingsHandler struct {
	resolver holdings.Resolver
}

// NewHoldingsHandler creates a new HoldingsHandler
func NewHoldingsHandler(resolver holdings.Resolver) *HoldingsHandler {
	return &HoldingsHandler{
		resolver: resolver,
	}
}

// Get handles GET /holdings/:ticker
// @Summary Get fund holdings
// @Description Look up the basket of underlying holdings for a fund or stock ticker
// @Tags holdings
// @Produce json
// @Param ticker path string true "Fund or stock ticker"
// @Success 200 {object} models.FundResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /holdings/{ticker} [get]
func (h *HoldingsHandler) Get(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "ticker is required",
		})
		return
	}

	fund, err := h.resolver.Resolve(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	if fund == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: fmt.Sprintf("Data for %s not found", ticker),
		})
		return
	}

	c.JSON(http.StatusOK, models.FundResponse{Fund: fund})
}
