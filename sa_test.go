// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRandUint16(size, k int) []uint16 {
	out := make([]uint16, size)
	for i := range out {
		out[i] = uint16(rand.Intn(k))
	}
	return out
}

func TestSA16Property(t *testing.T) {
	for _, k := range []int{2, 16, 256, 65536} {
		text := genRandUint16(500+rand.Intn(500), k)
		sa, err := SA16(text, 0, 1)
		require.NoError(t, err)
		assertPermutation(t, sa, len(text))
		assertSorted(t, widen16(text), sa)
	}
}

func TestSA16GSA(t *testing.T) {
	var text []uint16
	for _, word := range []string{"foo", "bar"} {
		for _, r := range word {
			text = append(text, uint16(r))
		}
		text = append(text, 0)
	}
	sa, err := SA16GSA(text, 0, 1)
	require.NoError(t, err)
	assertPermutation(t, sa, len(text))

	_, err = SA16GSA([]uint16{1, 2, 3}, 0, 1)
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestSALongProperty(t *testing.T) {
	for _, k := range []int{2, 16, 256} {
		text := make([]int32, 500+rand.Intn(500))
		for i := range text {
			text[i] = rand.Int31n(int32(k))
		}
		sa, err := SALong(text, k, 0, 1)
		require.NoError(t, err)
		assertPermutation(t, sa, len(text))
		assertSorted(t, text, sa)
	}
}

func TestSALongRejectsOutOfRangeSymbol(t *testing.T) {
	_, err := SALong([]int32{0, 1, 5}, 2, 0, 1)
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = SALong([]int32{0, 1}, 0, 0, 1)
	assert.ErrorIs(t, err, ErrBadArgument)
}

func TestSALongDeterministicAcrossThreadCounts(t *testing.T) {
	text := []int32{3, 1, 4, 1, 5, 9, 2, 6}
	want, err := SALong(text, 10, 0, 1)
	require.NoError(t, err)
	for _, threads := range []int{2, 4, 8} {
		got, err := SALong(text, 10, 0, threads)
		require.NoError(t, err)
		assert.Equal(t, want, got, "threads=%d", threads)
	}
}

func TestSA64MatchesSA32(t *testing.T) {
	text := []byte("mississippiabracadabrabanana")
	sa32, err := SA(text, 0, 1)
	require.NoError(t, err)
	sa64, err := SA64(text, 0, 1)
	require.NoError(t, err)

	require.Len(t, sa64, len(sa32))
	for i, v := range sa32 {
		assert.Equal(t, int64(v), sa64[i])
	}
}
