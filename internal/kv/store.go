// Package kv is the durable key-value collaborator: opaque JSON blobs under
// string keys, surviving process restarts. Carts are stored per identity,
// the catalog under a single global key.
package kv

import "context"

// Store reads and writes durable JSON records. Get reports found=false when
// the key is absent; a present but unparseable record yields an error
// wrapping ErrBadValue so callers can fold it into a cache miss.
type Store interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	// CartKeyPrefix partitions cart snapshots strictly per identity.
	CartKeyPrefix = "cart_"

	// ProductsKey holds the global catalog record shared by all sessions.
	ProductsKey = "products"
)

// CartKey returns the durable record key for one identity's cart.
func CartKey(userID string) string {
	return CartKeyPrefix + userID
}
