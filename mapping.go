package chainmap

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Map is the contract shared by ArrayMap and ChainedMap. Either one can be
// used as the chain of a ChainedMap.
//
// A Map is not safe for concurrent use. Iterators are live views: a
// structural modification of the map (an insert of a new key, a removal or
// a clear) invalidates every iterator created before it, and their Next
// reports ErrConcurrentModification. Overwriting the value of an existing
// key is not a structural modification.
type Map[K comparable, V any] interface {
	// Get returns the value stored for key and whether key is present.
	Get(key K) (V, bool)

	// Put associates value with key. It returns the previous value and true
	// if key was already present, or the zero value and false otherwise.
	Put(key K, value V) (V, bool)

	// Remove deletes key. It returns the removed value and true on a hit.
	Remove(key K) (V, bool)

	ContainsKey(key K) bool
	Size() int
	IsEmpty() bool
	Clear()

	// Iterator returns a single-pass iterator over every entry present at
	// creation time. No order is guaranteed.
	Iterator() Iterator[K, V]

	// All is the range-over-func form of Iterator.
	All() iter.Seq2[K, V]

	String() string
}

// Iterator walks the entries of a Map once.
type Iterator[K comparable, V any] interface {
	// HasNext reports whether Next would return an entry. Calling it
	// repeatedly without Next returns the same answer.
	HasNext() bool

	// Next returns the next entry, ErrNoSuchElement once exhausted, or
	// ErrConcurrentModification if the map changed underneath.
	Next() (Entry[K, V], error)
}

// ChainFactory builds an empty chain with the given capacity hint.
type ChainFactory[K comparable, V any] func(capacity int) Map[K, V]

// seq adapts an Iterator to iter.Seq2. It panics if the map is structurally
// modified while ranging, the same way a fail-fast iterator would throw.
func seq[K comparable, V any](it Iterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it.HasNext() {
			e, err := it.Next()
			if err != nil {
				panic(errors.Wrap(err, "chainmap: range"))
			}

			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same keys with values equal under eq.
func Equal[K comparable, V any](a, b Map[K, V], eq func(V, V) bool) bool {
	if a.Size() != b.Size() {
		return false
	}

	for k, v := range a.All() {
		other, ok := b.Get(k)
		if !ok || !eq(v, other) {
			return false
		}
	}

	return true
}

// Keys returns the keys of m in iteration order.
func Keys[K comparable, V any](m Map[K, V]) []K {
	keys := make([]K, 0, m.Size())
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Collect copies m into a native Go map.
func Collect[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	for k, v := range m.All() {
		out[k] = v
	}

	return out
}

func format[K comparable, V any](m Map[K, V]) string {
	var sb strings.Builder

	sb.WriteByte('{')

	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false

		sb.WriteString(NewEntry(k, v).String())
	}

	sb.WriteByte('}')

	return sb.String()
}
