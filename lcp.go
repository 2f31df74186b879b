// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// PLCP computes the permuted longest-common-prefix array of text given its
// suffix array, using Kasai's algorithm: a single left-to-right scan over
// text (not sa) that tracks a running common-prefix length which can only
// drop by one per step, for an overall O(n) bound (spec.md §4.9, §8 "Kasai
// bound").
func PLCP(text []byte, sa []int32) ([]int32, error) {
	n := len(text)
	if len(sa) != n {
		return nil, ErrBadArgument
	}
	if n == 0 {
		return []int32{}, nil
	}

	rank := make([]int32, n)
	for i, p := range sa {
		rank[p] = int32(i)
	}

	plcp := make([]int32, n)
	var h int32
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := int(sa[rank[i]-1])
			for i+int(h) < n && j+int(h) < n && text[i+int(h)] == text[j+int(h)] {
				h++
			}
			plcp[i] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	return plcp, nil
}

// PLCPGSA is PLCP for a generalized suffix array: common-prefix extension
// additionally stops at a 0 separator, since two suffixes from different
// source strings should never be credited with matching across the
// boundary between them (spec.md §4.9: "GSA variants treat the 0
// separators as shorter boundaries").
func PLCPGSA(text []byte, sa []int32) ([]int32, error) {
	n := len(text)
	if len(sa) != n {
		return nil, ErrBadArgument
	}
	if n == 0 {
		return []int32{}, nil
	}

	rank := make([]int32, n)
	for i, p := range sa {
		rank[p] = int32(i)
	}

	plcp := make([]int32, n)
	var h int32
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := int(sa[rank[i]-1])
			for i+int(h) < n && j+int(h) < n && text[i+int(h)] == text[j+int(h)] && text[i+int(h)] != 0 {
				h++
			}
			plcp[i] = h
			if h > 0 {
				h--
			}
		} else {
			h = 0
		}
	}
	return plcp, nil
}

// LCP permutes a PLCP array into suffix-array order: LCP[i] = PLCP[SA[i]].
// The result is a newly allocated slice; sa is not modified.
func LCP(plcp []int32, sa []int32) []int32 {
	out := make([]int32, len(sa))
	for i, p := range sa {
		out[i] = plcp[p]
	}
	return out
}
