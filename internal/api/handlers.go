package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/NobilGautam/blendnetai-backend/internal/core"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the subset of the store the handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*core.User, error)
	GetByUsername(ctx context.Context, username string) (*core.User, error)
	AddToWatchlist(ctx context.Context, username, symbol string) ([]string, error)
	RemoveFromWatchlist(ctx context.Context, username, symbol string) ([]string, error)
}

// QuoteClient fetches intraday data from the upstream market-data API.
type QuoteClient interface {
	Intraday(ctx context.Context, symbol, interval string) (json.RawMessage, error)
}

type Handler struct {
	Store  UserStore
	Quotes QuoteClient
	Logger zerolog.Logger
}

func NewHandler(s UserStore, q QuoteClient, logger zerolog.Logger) *Handler {
	return &Handler{
		Store:  s,
		Quotes: q,
		Logger: logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUser API: User registration
func (h *Handler) RegisterUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	// hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	// create user; a duplicate username trips the unique index and is
	// reported the same as any other store failure
	if _, err := h.Store.CreateUser(c.Request.Context(), req.Username, string(hash)); err != nil {
		h.Logger.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// LoginUser API: User login
func (h *Handler) LoginUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := h.Store.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.Logger.Error().Err(err).Str("username", req.Username).Msg("failed to look up user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	// same response for unknown user and wrong password
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":       user.Id,
			"username": user.Username,
		},
	})
}
