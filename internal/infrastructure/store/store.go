// Package store persists opaque session snapshots under fixed keys. The
// engine treats snapshot contents as blobs: a load that fails for any reason
// is reported and the caller starts fresh.
package store

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Fixed snapshot keys. Changing a key orphans previously written snapshots.
const (
	KeySession      = "wingfantasy_v1"
	KeyProfile      = "wingfantasy_user"
	KeyLeaderboards = "wingfantasy_leaderboards_v1"
	KeySeed         = "wingfantasy_rng_seed"
)

var ErrKeyNotFound = errors.New("snapshot key not found")

// Store is a key-to-blob persistence backend.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
