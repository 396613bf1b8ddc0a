package api

import (
	"errors"
	"net/http"

	"github.com/NobilGautam/blendnetai-backend/internal/core"

	"github.com/gin-gonic/gin"
)

type watchlistRequest struct {
	Username string `json:"username"`
	Symbol   string `json:"symbol"`
}

// GetWatchlist API: Get a user's watchlist
func (h *Handler) GetWatchlist(c *gin.Context) {
	username := c.Param("username")

	user, err := h.Store.GetByUsername(c.Request.Context(), username)
	if err != nil {
		h.Logger.Error().Err(err).Str("username", username).Msg("failed to fetch watchlist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watchlist"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user.Watchlist)
}

// AddToWatchlist API: Add a stock to a user's watchlist
func (h *Handler) AddToWatchlist(c *gin.Context) {
	var req watchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	watchlist, err := h.Store.AddToWatchlist(c.Request.Context(), req.Username, req.Symbol)
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case errors.Is(err, core.ErrDuplicateSymbol):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock already in watchlist"})
		return
	case err != nil:
		h.Logger.Error().Err(err).Str("username", req.Username).Str("symbol", req.Symbol).Msg("failed to add stock to watchlist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add stock to watchlist"})
		return
	}

	c.JSON(http.StatusOK, watchlist)
}

// RemoveFromWatchlist API: Remove a stock from a user's watchlist
func (h *Handler) RemoveFromWatchlist(c *gin.Context) {
	var req watchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	watchlist, err := h.Store.RemoveFromWatchlist(c.Request.Context(), req.Username, req.Symbol)
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	case err != nil:
		h.Logger.Error().Err(err).Str("username", req.Username).Str("symbol", req.Symbol).Msg("failed to remove stock from watchlist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove stock from watchlist"})
		return
	}

	c.JSON(http.StatusOK, watchlist)
}
