package chainmap

import "iter"

// ChainedMap is a hash table resolving collisions with chains. Each chain
// is itself a Map (an ArrayMap unless WithChainFactory says otherwise),
// created on the first insert into its slot.
//
// When an insert of a new key finds size/chains at or above the load factor
// threshold, the chain array doubles and every entry is rehashed before the
// new key is placed. Clear restores the initial chain count.
//
// The nil key is a legal key for pointer, channel and interface key types.
// ChainedMap is not safe for concurrent use.
type ChainedMap[K comparable, V any] struct {
	table[K, V]
}

var _ Map[string, int] = (*ChainedMap[string, int])(nil)

// Returns a new map with DefaultConfig.
func New[K comparable, V any](opts ...Option[K, V]) *ChainedMap[K, V] {
	var cm ChainedMap[K, V]
	cm.init(DefaultConfig(), opts...)

	return &cm
}

// NewWithParams returns a new map with the given geometry. Every parameter must be positive.
func NewWithParams[K comparable, V any](threshold float64, chainCount, chainCapacity int, opts ...Option[K, V]) (*ChainedMap[K, V], error) {
	return NewFromConfig(Config{
		LoadFactorThreshold:  threshold,
		InitialChainCount:    chainCount,
		ChainInitialCapacity: chainCapacity,
	}, opts...)
}

func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*ChainedMap[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var cm ChainedMap[K, V]
	cm.init(cfg, opts...)

	return &cm, nil
}

// ChainedChain returns a ChainFactory building ChainedMap chains with the
// given options and default geometry, for nesting one hash table in another.
func ChainedChain[K comparable, V any](opts ...Option[K, V]) ChainFactory[K, V] {
	return func(capacity int) Map[K, V] {
		cfg := DefaultConfig()
		cfg.InitialChainCount = capacity

		cm, err := NewFromConfig(cfg, opts...)
		if err != nil {
			return New(opts...)
		}

		return cm
	}
}

func (cm *ChainedMap[K, V]) Get(key K) (V, bool) {
	return cm.get(key)
}

func (cm *ChainedMap[K, V]) Put(key K, value V) (V, bool) {
	return cm.put(key, value)
}

func (cm *ChainedMap[K, V]) Remove(key K) (V, bool) {
	return cm.remove(key)
}

func (cm *ChainedMap[K, V]) ContainsKey(key K) bool {
	return cm.containsKey(key)
}

func (cm *ChainedMap[K, V]) Size() int {
	return cm.size
}

func (cm *ChainedMap[K, V]) IsEmpty() bool {
	return cm.size == 0
}

func (cm *ChainedMap[K, V]) Clear() {
	cm.clear()
}

// Iterator returns a live iterator. Next fails with ErrConcurrentModification
// after any structural change to the map.
func (cm *ChainedMap[K, V]) Iterator() Iterator[K, V] {
	return newChainedIterator(&cm.table)
}

func (cm *ChainedMap[K, V]) All() iter.Seq2[K, V] {
	return seq(cm.Iterator())
}

func (cm *ChainedMap[K, V]) String() string {
	return format[K, V](cm)
}
