package main

import (
	"context"
	"os"
	"time"

	"github.com/NobilGautam/blendnetai-backend/config"
	"github.com/NobilGautam/blendnetai-backend/internal/api"
	"github.com/NobilGautam/blendnetai-backend/internal/market"
	"github.com/NobilGautam/blendnetai-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("No .env file found, using environment variables")
	}

	// load config
	cfg := config.Load()

	// Initialize MongoDB connection
	client, err := config.NewMongo(cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	// Ensure the client is disconnected on exit
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()
	logger.Info().Msg("MongoDB connected")

	// Create store and enforce the unique username index
	userStore := store.NewStore(client.Database(cfg.MongoDB))
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := userStore.EnsureIndexes(ctx); err != nil {
			logger.Fatal().Err(err).Msg("Failed to create indexes")
		}
	}

	// Alpha Vantage client
	quotes := market.NewClient(cfg.StockAPIURL, cfg.StockAPIKey, market.WithLogger(logger))

	// Create Gin engine
	r := gin.Default()

	// configure CORS middleware: only the configured frontend origin is allowed
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CorsOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handler and register routes
	handler := api.NewHandler(userStore, quotes, logger)
	api.RegisterRoutes(r, handler)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to run server")
	}
}
