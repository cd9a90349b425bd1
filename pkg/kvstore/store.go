package kvstore

import "context"

// Store is the persistence contract for the local data layer: an
// opaque key-value map holding one serialized JSON blob per
// collection. Every mutation of a collection is a full blob rewrite,
// so a single collection can never be observed half-updated.
//
// Get returns (nil, nil) for a missing key. Backends do not interpret
// the value; decode failures are handled by the repositories, which
// treat malformed blobs as absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
