package chainmap

import (
	"fmt"
	"iter"
	"strings"
)

// ChainedSet is a set of keys stored in a ChainedMap with empty values.
// It shares the map's resizing and iteration behaviour, and like the map it
// is not safe for concurrent use.
type ChainedSet[K comparable] struct {
	m *ChainedMap[K, struct{}]
}

// NewSet returns an empty set with DefaultConfig.
func NewSet[K comparable](opts ...Option[K, struct{}]) *ChainedSet[K] {
	return &ChainedSet[K]{m: New(opts...)}
}

func NewSetFromConfig[K comparable](cfg Config, opts ...Option[K, struct{}]) (*ChainedSet[K], error) {
	m, err := NewFromConfig(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &ChainedSet[K]{m: m}, nil
}

// Adds a key to the set. Returns whether the key is new.
func (ss *ChainedSet[K]) Add(key K) bool {
	_, existed := ss.m.Put(key, struct{}{})

	return !existed
}

func (ss *ChainedSet[K]) Has(key K) bool {
	return ss.m.ContainsKey(key)
}

// Removes a key from the set. Returns whether it was present.
func (ss *ChainedSet[K]) Delete(key K) bool {
	_, ok := ss.m.Remove(key)

	return ok
}

func (ss *ChainedSet[K]) Size() int {
	return ss.m.Size()
}

func (ss *ChainedSet[K]) Reset() {
	ss.m.Clear()
}

func (ss *ChainedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range ss.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (ss *ChainedSet[K]) Stats() Stats {
	return ss.m.Stats()
}

func (ss *ChainedSet[K]) String() string {
	items := make([]string, 0, ss.Size())
	for k := range ss.All() {
		items = append(items, fmt.Sprintf("%v", k))
	}

	return "{" + strings.Join(items, ", ") + "}"
}
