// Package infra provides the durable key-value substrate every collection
// persists through: one serialized blob per named storage key.
package infra

import "context"

// BlobStore is the swappable persistence backend. Get reports absence via
// the bool rather than an error; an absent key is a normal first-run state.
type BlobStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
