package chainmap

import (
	"hash/maphash"
	"reflect"
)

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// NilKeyFunc builds a predicate reporting whether a key is nil. Keys of
// non-nillable types are never nil and get a predicate that always returns false.
func NilKeyFunc[K comparable]() func(K) bool {
	typ := reflect.TypeFor[K]()

	switch typ.Kind() {
	case reflect.Interface:
		return func(k K) bool {
			return any(k) == nil
		}
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return func(k K) bool {
			return reflect.ValueOf(&k).Elem().IsNil()
		}
	default:
		return func(K) bool {
			return false
		}
	}
}

// BucketIndex maps a hash onto [0, n). The hash is unsigned, so there is no
// negative remainder to correct.
func BucketIndex(hash uint64, n int) int {
	return int(hash % uint64(n))
}
