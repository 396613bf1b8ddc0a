package core

import "errors"

type User struct {
	Id           string   `json:"id" bson:"_id"`
	Username     string   `json:"username" bson:"username"`
	PasswordHash string   `json:"-" bson:"password"`
	Watchlist    []string `json:"watchlist" bson:"watchlist"`
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateSymbol = errors.New("stock already in watchlist")
)
