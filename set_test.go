package chainmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSet(t *testing.T) {
	ss := NewSet[uint64]()

	require.Equal(t, 0, ss.Size())
	require.Equal(t, DefaultInitialChainCount, ss.Stats().Chains)
}

func Test_NewSetFromConfig_Invalid(t *testing.T) {
	ss, err := NewSetFromConfig[uint64](Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, ss)
}

func Test_Add(t *testing.T) {
	ss := NewSet[uint64]()

	require.True(t, ss.Add(1))
	require.False(t, ss.Add(1))
	assert.Equal(t, 1, ss.Size())
	assert.True(t, ss.Has(1))
	assert.False(t, ss.Has(2))
}

func Test_Add_Fill(t *testing.T) {
	ss, err := NewSetFromConfig[uint64](smallConfig())
	require.NoError(t, err)

	for i := range uint64(500) {
		require.True(t, ss.Add(i))
	}

	require.Equal(t, 500, ss.Size())
	require.GreaterOrEqual(t, ss.Stats().Resizes, 3)

	for i := range uint64(500) {
		require.True(t, ss.Has(i))
	}
}

func TestChainedSet_Collisions(t *testing.T) {
	ss := NewSet(WithHashFunc[string, struct{}](collisionHash[string]))

	require.True(t, ss.Add("A"))
	require.True(t, ss.Add("B"))
	require.True(t, ss.Add("C"))

	require.True(t, ss.Delete("B"))
	require.False(t, ss.Delete("B"))

	require.True(t, ss.Has("A"))
	require.True(t, ss.Has("C"))
	require.Equal(t, 1, ss.Stats().PopulatedChains)
}

func TestChainedSet_Reset(t *testing.T) {
	ss := NewSet[int]()
	for i := range 50 {
		ss.Add(i)
	}

	ss.Reset()

	require.Equal(t, 0, ss.Size())
	require.False(t, ss.Has(0))
}

func TestChainedSet_All(t *testing.T) {
	ss := NewSet[int]()
	for i := range 20 {
		ss.Add(i)
	}

	seen := make(map[int]struct{})
	for k := range ss.All() {
		seen[k] = struct{}{}
	}
	require.Len(t, seen, 20)
}

func TestChainedSet_String(t *testing.T) {
	require.Equal(t, "{}", NewSet[int]().String())

	one := NewSet[string]()
	one.Add("x")
	require.Equal(t, "{x}", one.String())
}
