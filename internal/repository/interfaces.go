package repository

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SliceInfo describes one stored slice without its payload.
type SliceInfo struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// SliceRepo stores whole named values. Save always overwrites the full
// value of a key; there is no partial update.
type SliceRepo interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteKeys(ctx context.Context, keys []string) (int, error)
	List(ctx context.Context) ([]SliceInfo, error)
}
