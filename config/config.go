package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config stores the application configuration
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	StockAPIKey string
	StockAPIURL string
	CorsOrigin  string
}

// Load reads the configuration from environment variables
func Load() *Config {
	// set default value for listening port
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	// set default value for MongoDB connection string
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	// set default value for database name
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "blendnetai"
	}

	// Alpha Vantage serves a limited data set under the shared demo key
	stockAPIKey := os.Getenv("STOCK_API_KEY")
	if stockAPIKey == "" {
		stockAPIKey = "demo"
	}

	stockAPIURL := os.Getenv("STOCK_API_URL")
	if stockAPIURL == "" {
		stockAPIURL = "https://www.alphavantage.co/query"
	}

	// set default value for the allowed frontend origin
	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "https://blendnetai-frontend.vercel.app"
	}

	return &Config{
		Port:        port,
		MongoURI:    mongoURI,
		MongoDB:     mongoDB,
		StockAPIKey: stockAPIKey,
		StockAPIURL: stockAPIURL,
		CorsOrigin:  corsOrigin,
	}
}

// NewMongo connects to MongoDB and verifies the connection with a ping
func NewMongo(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	// Check connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client, nil
}
