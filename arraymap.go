package chainmap

import "iter"

const defaultArrayMapCapacity = 10

// ArrayMap is a Map backed by a slice and a linear scan. It is the default
// chain of a ChainedMap.
//
// Removal moves the last entry into the freed slot, so live entries always
// occupy a dense prefix of the slice. Iteration follows insertion order only
// until the first removal.
type ArrayMap[K comparable, V any] struct {
	entries  []Entry[K, V]
	modCount int
}

var _ Map[string, int] = (*ArrayMap[string, int])(nil)

// NewArrayMap returns an empty ArrayMap. A non-positive capacity falls back to the default.
func NewArrayMap[K comparable, V any](capacity int) *ArrayMap[K, V] {
	if capacity <= 0 {
		capacity = defaultArrayMapCapacity
	}

	return &ArrayMap[K, V]{
		entries: make([]Entry[K, V], 0, capacity),
	}
}

// ArrayChain is a ChainFactory producing ArrayMap chains.
func ArrayChain[K comparable, V any](capacity int) Map[K, V] {
	return NewArrayMap[K, V](capacity)
}

func (m *ArrayMap[K, V]) indexOf(key K) int {
	for i := range m.entries {
		if m.entries[i].key == key {
			return i
		}
	}

	return -1
}

func (m *ArrayMap[K, V]) Get(key K) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].value, true
	}

	var zero V
	return zero, false
}

func (m *ArrayMap[K, V]) Put(key K, value V) (V, bool) {
	if i := m.indexOf(key); i >= 0 {
		return m.entries[i].SetValue(value), true
	}

	if len(m.entries) == cap(m.entries) {
		grown := make([]Entry[K, V], len(m.entries), 2*cap(m.entries))
		copy(grown, m.entries)
		m.entries = grown
	}

	m.entries = append(m.entries, NewEntry(key, value))
	m.modCount++

	var zero V
	return zero, false
}

func (m *ArrayMap[K, V]) Remove(key K) (V, bool) {
	i := m.indexOf(key)
	if i < 0 {
		var zero V
		return zero, false
	}

	old := m.entries[i].value
	last := len(m.entries) - 1

	m.entries[i] = m.entries[last]
	// Drop references held by the vacated slot.
	m.entries[last] = Entry[K, V]{}
	m.entries = m.entries[:last]
	m.modCount++

	return old, true
}

func (m *ArrayMap[K, V]) ContainsKey(key K) bool {
	return m.indexOf(key) >= 0
}

func (m *ArrayMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *ArrayMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

func (m *ArrayMap[K, V]) Clear() {
	clear(m.entries)
	m.entries = m.entries[:0]
	m.modCount++
}

func (m *ArrayMap[K, V]) Iterator() Iterator[K, V] {
	return &arrayMapIterator[K, V]{m: m, modCount: m.modCount}
}

func (m *ArrayMap[K, V]) All() iter.Seq2[K, V] {
	return seq(m.Iterator())
}

func (m *ArrayMap[K, V]) String() string {
	return format[K, V](m)
}

type arrayMapIterator[K comparable, V any] struct {
	m        *ArrayMap[K, V]
	pos      int
	modCount int
}

func (it *arrayMapIterator[K, V]) HasNext() bool {
	return it.pos < len(it.m.entries)
}

func (it *arrayMapIterator[K, V]) Next() (Entry[K, V], error) {
	if it.modCount != it.m.modCount {
		return Entry[K, V]{}, ErrConcurrentModification
	}

	if it.pos >= len(it.m.entries) {
		return Entry[K, V]{}, ErrNoSuchElement
	}

	e := it.m.entries[it.pos]
	it.pos++

	return e, nil
}
