package chainmap

import "fmt"

// Entry is a key/value pair. The key is fixed at construction.
type Entry[K comparable, V any] struct {
	key   K
	value V
}

func NewEntry[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

func (e Entry[K, V]) Key() K {
	return e.key
}

func (e Entry[K, V]) Value() V {
	return e.value
}

// SetValue replaces the value and returns the previous one.
func (e *Entry[K, V]) SetValue(value V) V {
	old := e.value
	e.value = value

	return old
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.key, e.value)
}
