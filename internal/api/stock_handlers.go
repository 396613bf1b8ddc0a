package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetIntraday API: Proxy an intraday quote request to the market-data API
func (h *Handler) GetIntraday(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := c.Query("interval")

	data, err := h.Quotes.Intraday(c.Request.Context(), symbol, interval)
	if err != nil {
		h.Logger.Error().Err(err).Str("symbol", symbol).Msg("failed to fetch intraday stock data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch intraday stock data"})
		return
	}

	// relay the upstream body verbatim
	c.Data(http.StatusOK, "application/json", data)
}
