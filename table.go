package chainmap

import (
	"hash/maphash"

	"go.uber.org/zap"
)

// table is an array of chains. A nil slot means no key has hashed there yet.
// Chains are created lazily on the first insert into a slot and are only
// dropped wholesale, by clear or by a resize.
type table[K comparable, V any] struct {
	chains []Map[K, V]
	size   int

	threshold         float64
	initialChainCount int
	chainCapacity     int

	hashFunc HashFunc[K]
	isNil    func(K) bool
	newChain ChainFactory[K, V]
	logger   *zap.Logger

	// Bumped on every structural modification, checked by iterators.
	modCount int
	resizes  int
}

// init expects a validated config.
func (t *table[K, V]) init(cfg Config, opts ...Option[K, V]) {
	t.threshold = cfg.LoadFactorThreshold
	t.initialChainCount = cfg.InitialChainCount
	t.chainCapacity = cfg.ChainInitialCapacity
	t.chains = make([]Map[K, V], cfg.InitialChainCount)
	t.isNil = NilKeyFunc[K]()

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.newChain == nil {
		t.newChain = ArrayChain[K, V]
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}
}

// index returns the slot of key in a chain array of length n.
// The nil key always lives in slot 0.
func (t *table[K, V]) index(key K, n int) int {
	if t.isNil(key) {
		return 0
	}

	return BucketIndex(t.hashFunc(key), n)
}

func (t *table[K, V]) chainOf(key K) Map[K, V] {
	return t.chains[t.index(key, len(t.chains))]
}

func (t *table[K, V]) get(key K) (V, bool) {
	if c := t.chainOf(key); c != nil {
		return c.Get(key)
	}

	var zero V
	return zero, false
}

func (t *table[K, V]) containsKey(key K) bool {
	c := t.chainOf(key)

	return c != nil && c.ContainsKey(key)
}

func (t *table[K, V]) put(key K, value V) (V, bool) {
	if c := t.chainOf(key); c != nil && c.ContainsKey(key) {
		return c.Put(key, value)
	}

	// The load factor is checked before the insert, so the new key is
	// always placed with the post-resize geometry.
	if t.loadFactor() >= t.threshold {
		t.grow()
	}

	idx := t.index(key, len(t.chains))
	if t.chains[idx] == nil {
		t.chains[idx] = t.newChain(t.chainCapacity)
	}

	t.chains[idx].Put(key, value)
	t.size++
	t.modCount++

	var zero V
	return zero, false
}

// grow doubles the chain array and rehashes every entry into it.
func (t *table[K, V]) grow() {
	from := len(t.chains)
	chains := make([]Map[K, V], 2*from)

	for _, c := range t.chains {
		if c == nil {
			continue
		}

		for k, v := range c.All() {
			idx := t.index(k, len(chains))
			if chains[idx] == nil {
				chains[idx] = t.newChain(t.chainCapacity)
			}

			chains[idx].Put(k, v)
		}
	}

	t.chains = chains
	t.resizes++
	t.modCount++

	t.logger.Debug("chain array resized",
		zap.Int("from", from),
		zap.Int("to", len(chains)),
		zap.Int("size", t.size),
	)
}

func (t *table[K, V]) remove(key K) (V, bool) {
	c := t.chainOf(key)
	if c == nil {
		var zero V
		return zero, false
	}

	old, ok := c.Remove(key)
	if ok {
		t.size--
		t.modCount++
	}

	return old, ok
}

// clear drops every chain and restores the initial chain count.
func (t *table[K, V]) clear() {
	t.logger.Debug("chain array cleared",
		zap.Int("size", t.size),
		zap.Int("chains", len(t.chains)),
	)

	t.size = 0
	t.chains = make([]Map[K, V], t.initialChainCount)
	t.modCount++
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(len(t.chains))
}

func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.size,
		Chains:     len(t.chains),
		LoadFactor: t.loadFactor(),
		Resizes:    t.resizes,
	}

	for _, c := range t.chains {
		if c == nil {
			continue
		}

		s.PopulatedChains++
		s.LongestChain = max(s.LongestChain, c.Size())
	}

	return s
}
