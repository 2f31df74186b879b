// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sais computes, in linear time, the suffix array of a text and the
// two products derived from it: the Burrows-Wheeler Transform (with its
// inverse) and the longest-common-prefix array. The core algorithm is
// SA-IS (Nong, Zhang & Chan): induced sorting of LMS suffixes, recursing on
// a reduced problem of at most half the size when LMS substrings collide.
package sais

// SA computes the suffix array of a byte string. fs is accepted for interface
// compatibility with the historical "free slack" contract (spec section on
// Idempotence of fs); it does not change the result — scratch space is
// always sized exactly to what the algorithm needs. threads is accepted for
// the same reason and is not used here: the construction runs on the calling
// goroutine. (SAFreq's histogram and BWT's symbol copy do use threads; 0
// there selects a default derived from the host's logical core count.)
func SA(text []byte, fs, threads int) ([]int32, error) {
	if fs < 0 {
		return nil, ErrBadArgument
	}
	wide := widenBytes(text)
	sa := computeSA(wide)
	return sa, nil
}

// SAFreq is SA, additionally reporting the occurrence count of every byte
// value 0..255 in freq.
func SAFreq(text []byte, fs, threads int, freq *[256]int32) ([]int32, error) {
	sa, err := SA(text, fs, threads)
	if err != nil {
		return nil, err
	}
	if freq != nil {
		*freq = parallelFreqBytes(text, threads)
	}
	return sa, nil
}

// SAGSA computes a generalized suffix array over a single byte string that
// concatenates several sub-strings separated by 0 bytes, per the spec's GSA
// contract: text must end in a 0, and 0 may not appear anywhere else in a
// content role.
func SAGSA(text []byte, fs, threads int) ([]int32, error) {
	if fs < 0 {
		return nil, ErrBadArgument
	}
	if len(text) == 0 || text[len(text)-1] != 0 {
		return nil, ErrBadArgument
	}
	wide := widenBytes(text)
	return computeSA(wide), nil
}

// SA16 is SA for 16-bit symbols.
func SA16(text []uint16, fs, threads int) ([]int32, error) {
	if fs < 0 {
		return nil, ErrBadArgument
	}
	wide := widen16(text)
	return computeSA(wide), nil
}

// SA16GSA is SAGSA for 16-bit symbols.
func SA16GSA(text []uint16, fs, threads int) ([]int32, error) {
	if fs < 0 {
		return nil, ErrBadArgument
	}
	if len(text) == 0 || text[len(text)-1] != 0 {
		return nil, ErrBadArgument
	}
	wide := widen16(text)
	return computeSA(wide), nil
}

// SALong computes the suffix array of an arbitrary-integer-alphabet
// sequence, where every symbol lies in [0, k). Unlike the C reference this
// package is modeled on, text is never mutated: the induced-sort engine
// already auto-sizes its bucket tables to the symbol range actually
// present, so there is nothing to restore on return — a stronger guarantee
// than "restored on success" (see DESIGN.md, Open Question 3).
func SALong(text []int32, k, fs, threads int) ([]int32, error) {
	if k < 1 || fs < 0 {
		return nil, ErrBadArgument
	}
	for _, v := range text {
		if v < 0 || v >= int32(k) {
			return nil, ErrBadArgument
		}
	}
	return computeSA(text), nil
}

// SA64 is SA with a 64-bit output index width, for texts whose length
// exceeds the range of int32. The construction itself is unchanged
// (spec.md §1 excludes the 64-bit path as "mechanically identical to the
// 32-bit integer path"); this widens the 32-bit result at the boundary.
func SA64(text []byte, fs, threads int) ([]int64, error) {
	sa, err := SA(text, fs, threads)
	if err != nil {
		return nil, err
	}
	return widenIndices(sa), nil
}

// widenBytes copies a byte slice into an int32 symbol slice.
func widenBytes(text []byte) []int32 {
	wide := make([]int32, len(text))
	for i, b := range text {
		wide[i] = int32(b)
	}
	return wide
}

// widen16 copies a uint16 slice into an int32 symbol slice.
func widen16(text []uint16) []int32 {
	wide := make([]int32, len(text))
	for i, b := range text {
		wide[i] = int32(b)
	}
	return wide
}

// widenIndices widens a 32-bit suffix array to 64-bit indices.
func widenIndices(sa []int32) []int64 {
	out := make([]int64, len(sa))
	for i, v := range sa {
		out[i] = int64(v)
	}
	return out
}

