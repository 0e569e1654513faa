package kv

import "context"

// Store is the durable blob store the cart persists through. Save
// overwrites the whole value under key; Load reports absence through
// its second return instead of an error, so a never-saved key and a
// saved-then-emptied key stay distinguishable.
type Store interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, bool, error)
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	CartKeyPrefix    = "cart"
	SessionKeyPrefix = "session"
)
