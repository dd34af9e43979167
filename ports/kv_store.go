package ports

import "context"

// KeyValueStore is the small injected store for flags like onboarding-seen.
// The quiz flow reads and writes through this interface instead of ambient
// globals.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
