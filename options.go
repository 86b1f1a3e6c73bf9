package chainmap

import "go.uber.org/zap"

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithChainFactory replaces the ArrayMap chains with chains built by f.
// f must never return nil.
func WithChainFactory[K comparable, V any](f ChainFactory[K, V]) Option[K, V] {
	return func(t *table[K, V]) {
		t.newChain = f
	}
}

// WithLogger sets the logger used for resize and clear events. Defaults to a no-op logger.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}
