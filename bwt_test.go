// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBWTScenarios(t *testing.T) {
	cases := []struct {
		text    string
		bwt     string
		primary int
	}{
		{"banana", "nnbaaa", 4},
		{"aaaa", "aaaa", 4},
		{"abracadabra", "rdarcaaaabb", 3},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			u := make([]byte, len(c.text))
			primary, err := BWT([]byte(c.text), u, 0, 1, nil)
			require.NoError(t, err)
			assert.Equal(t, c.bwt, string(u))
			assert.Equal(t, c.primary, primary)
		})
	}
}

func TestBWTBoundaryLengths(t *testing.T) {
	u0 := []byte{}
	primary, err := BWT([]byte{}, u0, 0, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, primary)

	u1 := make([]byte, 1)
	primary, err = BWT([]byte{'x'}, u1, 0, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, primary)
	assert.Equal(t, byte('x'), u1[0])
}

func TestBWTRoundTrip(t *testing.T) {
	inputs := []string{"banana", "mississippi", "aaaa", "abracadabra", ""}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			text := []byte(in)
			u := make([]byte, len(text))
			primary, err := BWT(text, u, 0, 1, nil)
			require.NoError(t, err)

			got, err := UnBWT(u, primary, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(text, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBWTRoundTripRandom1MiB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1MiB round trip in short mode")
	}
	text := make([]byte, 1<<20)
	rand.Read(text)

	u := make([]byte, len(text))
	primary, err := BWT(text, u, 0, 0, nil)
	require.NoError(t, err)

	got, err := UnBWT(u, primary, nil)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestBWTAliasing(t *testing.T) {
	text := []byte("mississippi")
	u1 := make([]byte, len(text))
	primary1, err := BWT(text, u1, 0, 1, nil)
	require.NoError(t, err)

	aliased := append([]byte(nil), text...)
	primary2, err := BWT(aliased, aliased, 0, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, primary1, primary2)
	assert.Equal(t, u1, aliased)
}

func TestBWTAuxRoundTrip(t *testing.T) {
	text := []byte("mississippi")
	r := 4
	u := make([]byte, len(text))
	idx := make([]int32, auxIndexLen(len(text), r))

	primary, err := BWTAux(text, u, 0, 1, r, nil, idx)
	require.NoError(t, err)

	got, err := UnBWTAux(u, idx, r, primary, nil)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestBWTFreqAgreement(t *testing.T) {
	text := []byte("mississippi")
	u := make([]byte, len(text))
	var freq [256]int32
	_, err := BWT(text, u, 0, 1, &freq)
	require.NoError(t, err)

	var want [256]int32
	for _, b := range text {
		want[b]++
	}
	assert.Equal(t, want, freq)
}

func TestBWTFsIdempotence(t *testing.T) {
	text := []byte("abracadabra")
	u0 := make([]byte, len(text))
	p0, err := BWT(text, u0, 0, 1, nil)
	require.NoError(t, err)

	u6 := make([]byte, len(text))
	p6, err := BWT(text, u6, 6*256, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, p0, p6)
	assert.Equal(t, u0, u6)
}
