package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the API server of the stock monitoring project")
	})

	api := r.Group("/api")
	{
		api.POST("/register", h.RegisterUser)
		api.POST("/login", h.LoginUser)

		api.GET("/stocks/intraday/:symbol", h.GetIntraday)

		api.GET("/watchlist/:username", h.GetWatchlist)
		api.POST("/watchlist", h.AddToWatchlist)
		api.DELETE("/watchlist", h.RemoveFromWatchlist)
	}
}
