package chainmap

import "unsafe"

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// identityHash places int key k in slot k % chains.
func identityHash(k int) uint64 {
	return uint64(k)
}

// collisionHash sends every key to slot 0.
func collisionHash[K comparable](K) uint64 {
	return 0
}

func newTable[K comparable, V any](cfg Config, opts ...Option[K, V]) *table[K, V] {
	var tt table[K, V]
	tt.init(cfg, opts...)

	return &tt
}

func smallConfig() Config {
	return Config{
		LoadFactorThreshold:  2,
		InitialChainCount:    2,
		ChainInitialCapacity: 2,
	}
}
