package store

// Package store handles all database interactions related to users.

import (
	"context"
	"errors"

	"github.com/NobilGautam/blendnetai-backend/internal/core"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	users *mongo.Collection
}

// Constructor for Store
func NewStore(db *mongo.Database) *Store { return &Store{users: db.Collection("users")} }

// EnsureIndexes creates the unique username index. Called once at startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (*core.User, error) {
	u := &core.User{
		Id:           uuid.New().String(),
		Username:     username,
		PasswordHash: passwordHash,
		Watchlist:    []string{},
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*core.User, error) {
	u := &core.User{}
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(u)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, err
	}
	if u.Watchlist == nil {
		u.Watchlist = []string{}
	}
	return u, nil
}

// AddToWatchlist appends symbol to the user's watchlist and returns the
// updated list. The $addToSet update keeps the list duplicate-free even
// when two adds for the same user race.
func (s *Store) AddToWatchlist(ctx context.Context, username, symbol string) ([]string, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, core.ErrUserNotFound
	}
	for _, sym := range u.Watchlist {
		if sym == symbol {
			return nil, core.ErrDuplicateSymbol
		}
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$addToSet": bson.M{"watchlist": symbol}},
	)
	if err != nil {
		return nil, err
	}
	return append(u.Watchlist, symbol), nil
}

// RemoveFromWatchlist removes every occurrence of symbol and returns the
// updated list. Removing an absent symbol is a no-op, not an error.
func (s *Store) RemoveFromWatchlist(ctx context.Context, username, symbol string) ([]string, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, core.ErrUserNotFound
	}

	_, err = s.users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{"watchlist": symbol}},
	)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(u.Watchlist))
	for _, sym := range u.Watchlist {
		if sym != symbol {
			updated = append(updated, sym)
		}
	}
	return updated, nil
}
