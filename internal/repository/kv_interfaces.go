package repository

import "context"

//go:generate mockgen -source=kv_interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// KeyValueRepositoryInterface is the small persistence port of the board.
// Get reports whether the key was present; a missing key is not an error.
type KeyValueRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}
