package driven

import "context"

// KeyValue is one entry in a batch read result.
type KeyValue struct {
	Key string
	// Value is the stored value. Empty with Found false when the key
	// does not exist.
	Value string
	// Found reports whether the key existed.
	Found bool
}

// KVStore is durable, process-surviving key/value storage. A missing
// key is a valid absent result, not an error. The store does not retry
// and does not degrade gracefully; failures are reported verbatim and
// the caller decides what to do with them.
//
// Secret-like values (tokens) are stored without additional encryption;
// they are trusted to the platform's storage security model.
type KVStore interface {
	// Get retrieves a value. Found is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores a value, overwriting any previous one.
	Set(ctx context.Context, key, value string) error

	// Remove deletes a key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// MultiGet retrieves several keys in one call, preserving order.
	MultiGet(ctx context.Context, keys []string) ([]KeyValue, error)

	// MultiSet stores several pairs atomically where the backend allows.
	MultiSet(ctx context.Context, pairs map[string]string) error

	// MultiRemove deletes several keys in one call.
	MultiRemove(ctx context.Context, keys []string) error
}
