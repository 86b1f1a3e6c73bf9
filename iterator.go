package chainmap

// chainedIterator flattens the chain array. It is in one of two states:
//
//   - scanning: current is nil, cursor points at the next slot to inspect;
//   - within a chain: current iterates chains[cursor].
//
// It is terminal once cursor == len(chains) while scanning.
type chainedIterator[K comparable, V any] struct {
	t        *table[K, V]
	chains   []Map[K, V]
	cursor   int
	current  Iterator[K, V]
	modCount int
}

func newChainedIterator[K comparable, V any](t *table[K, V]) *chainedIterator[K, V] {
	return &chainedIterator[K, V]{
		t:        t,
		chains:   t.chains,
		modCount: t.modCount,
	}
}

// advance skips nil, empty and exhausted chains until an entry is pending.
// It never consumes an entry.
func (it *chainedIterator[K, V]) advance() bool {
	for {
		if it.current != nil {
			if it.current.HasNext() {
				return true
			}

			it.current = nil
			it.cursor++
		}

		for it.cursor < len(it.chains) && (it.chains[it.cursor] == nil || it.chains[it.cursor].IsEmpty()) {
			it.cursor++
		}

		if it.cursor == len(it.chains) {
			return false
		}

		it.current = it.chains[it.cursor].Iterator()
	}
}

func (it *chainedIterator[K, V]) HasNext() bool {
	return it.advance()
}

func (it *chainedIterator[K, V]) Next() (Entry[K, V], error) {
	if it.modCount != it.t.modCount {
		return Entry[K, V]{}, ErrConcurrentModification
	}

	if !it.advance() {
		return Entry[K, V]{}, ErrNoSuchElement
	}

	return it.current.Next()
}
