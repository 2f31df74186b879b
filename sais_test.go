// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genRandText8(size int) []int32 {
	input := make([]int32, size)
	for i := 0; i < size; i++ {
		input[i] = rand.Int31n(255)
	}
	return input
}

func genRandText32(size int) []int32 {
	input := make([]int32, size)
	for i := 0; i < size; i++ {
		input[i] = rand.Int31()
	}
	return input
}

// referenceSA builds a suffix array the slow, obviously-correct way, for
// cross-checking computeSA's output.
func referenceSA(text []int32) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func TestComputeSA(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"empty string":         {input: []int32{}},
		"single character":     {input: []int32{100}},
		"same characters":      {input: []int32("aaaaaaaaaaaaaaaaaaaaa")},
		"1 LMS":                {input: []int32("aabab")},
		"2 LMS":                {input: []int32("aababab")},
		"banana":               {input: []int32("banana")},
		"repeated pattern":     {input: []int32{1, 2, 1, 2, 1, 2, 1, 2}},
		"reverse sorted":       {input: []int32{5, 4, 3, 2, 1}},
		"abracadabra":          {input: []int32("abracadabra")},
		"mississippi":          {input: []int32("mississippi")},
		"dna-like":             {input: []int32("ACGTGCCTAGCCTACCGTGCC")},
		"min/max edges":        {input: []int32{0, 255}},
		"alternating pattern":  {input: []int32{3, 1, 3, 1, 3, 1}},
		"zero characters":      {input: []int32{0, 0, 0, 1, 1, 1}},
		"long random string 8": {input: genRandText8(1000)},
		"long random string 32": {input: genRandText32(1000)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, referenceSA(tc.input), computeSA(tc.input))
		})
	}
}

// perAlphabetByteBudget is each alphabet's share of the spec's 10^6-byte
// randomized property-test budget (spec.md §8), spread across the five
// alphabet sizes below rather than spent entirely on the first one.
const perAlphabetByteBudget = 200_000

func TestComputeSAProperty(t *testing.T) {
	alphabets := []int32{2, 4, 16, 256, 65536}
	for _, k := range alphabets {
		total := 0
		for total < perAlphabetByteBudget {
			size := 200 + rand.Intn(2000)
			text := make([]int32, size)
			for i := range text {
				text[i] = rand.Int31n(k)
			}
			sa := computeSA(text)
			assertPermutation(t, sa, len(text))
			assertSorted(t, text, sa)
			total += size
		}
	}
}

func assertPermutation(t *testing.T, sa []int32, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, p := range sa {
		assert.True(t, p >= 0 && int(p) < n)
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func assertSorted(t *testing.T, text []int32, sa []int32) {
	t.Helper()
	for i := 1; i < len(sa); i++ {
		assert.LessOrEqual(t, slices.Compare(text[sa[i-1]:], text[sa[i]:]), 0)
	}
}

// TestScenarios checks the concrete end-to-end suffix array scenarios the
// spec lists verbatim.
func TestScenarios(t *testing.T) {
	assert.Equal(t, []int32{5, 3, 1, 0, 4, 2}, computeSA([]int32("banana")))
	assert.Equal(t, []int32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2}, computeSA([]int32("mississippi")))
	assert.Equal(t, []int32{3, 2, 1, 0}, computeSA([]int32("aaaa")))
	assert.Equal(t, []int32{10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2}, computeSA([]int32("abracadabra")))
}
