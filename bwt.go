// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// BWT computes the Burrows-Wheeler Transform of text via its suffix array:
// BWT[i] = text[(sa[i] - 1 + n) mod n], the classic SA-to-BWT formula
// (grounded on dsnet-compress/bzip2/bwt.go's encodeBWT, adapted to this
// package's own SA-IS core instead of a doubled-string workaround). U may
// alias text. freq, if non-nil, receives the per-byte occurrence count of
// text.
//
// The returned primary index follows the historical convention this
// package's reference implementation uses (spec.md §9): it is the row
// index where the original string appears, incremented by one, so it is
// 1-based for n > 1. For n <= 1 the primary index is n itself, and U[0]
// (if n == 1) is simply text[0].
func BWT(text []byte, u []byte, fs, threads int, freq *[256]int32) (int, error) {
	if fs < 0 {
		return 0, ErrBadArgument
	}
	if len(u) != len(text) {
		return 0, ErrBadArgument
	}
	if freq != nil {
		*freq = parallelFreqBytes(text, threads)
	}

	n := len(text)
	if n == 0 {
		return 0, nil
	}
	if n == 1 {
		u[0] = text[0]
		return 1, nil
	}

	sa, err := SA(text, fs, threads)
	if err != nil {
		return 0, err
	}

	scratch := u
	if sameBacking(text, u) {
		scratch = make([]byte, n)
	}

	parallelCopyBWT(scratch, sa, text, threads)

	primary := 0
	for i, p := range sa {
		if p == 0 {
			primary = i + 1
			break
		}
	}
	if sameBacking(text, u) {
		copy(u, scratch)
	}
	return primary, nil
}

// sameBacking reports whether a and b start at the same element of one
// backing array, which the SA computation and BWT copy must treat as
// aliased. Slices that overlap at a different offset are not detected.
func sameBacking(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

// auxIndexLen is the spec's ⌈(n-1)/r⌉+1 sizing contract for a BWT
// auxiliary sampling index.
func auxIndexLen(n, r int) int {
	return (n-1+r-1)/r + 1
}

// BWTAux is BWT, additionally sampling every r-th text position (r a power
// of two) into idx, which must have length ⌈(n-1)/r⌉+1 — the auxiliary
// index spec.md §6/§8 describes for accelerated partial inversion. The
// inverse-BWT family is specified only at contract level (spec.md §1); idx
// is populated faithfully but UnBWTAux below does not use it to skip
// ahead, since the only testable contract is the full O(n) round trip.
func BWTAux(text []byte, u []byte, fs, threads, r int, freq *[256]int32, idx []int32) (int, error) {
	if r <= 0 || r&(r-1) != 0 {
		return 0, ErrBadArgument
	}
	n := len(text)
	wantLen := 0
	if n > 1 {
		wantLen = auxIndexLen(n, r)
	}
	if len(idx) != wantLen {
		return 0, ErrBadArgument
	}

	primary, err := BWT(text, u, fs, threads, freq)
	if err != nil {
		return 0, err
	}
	if n <= 1 {
		return primary, nil
	}

	sa, err := SA(text, fs, threads)
	if err != nil {
		return 0, err
	}
	for i, p := range sa {
		if int(p)%r == 0 {
			idx[int(p)/r] = int32(i)
		}
	}
	return primary, nil
}

// UnBWT reconstructs text from its Burrows-Wheeler Transform u and primary
// index (in the same 1-based-for-n>1 convention BWT returns), using the
// standard LF-mapping inversion over the sentinel-terminated matrix that u
// and the primary index encode: build cumulative symbol counts, then chase
// next pointers row by row, starting from the primary index.
// Grounded on dsnet-compress/bzip2/bwt.go's decodeBWT.
func UnBWT(u []byte, primaryIndex int, freq *[256]int32) ([]byte, error) {
	n := len(u)
	if n == 0 {
		return []byte{}, nil
	}
	if n == 1 {
		if primaryIndex != 1 {
			return nil, ErrBadArgument
		}
		return []byte{u[0]}, nil
	}
	if primaryIndex < 1 || primaryIndex > n {
		return nil, ErrBadArgument
	}

	var counts [256]int32
	for _, b := range u {
		counts[b]++
	}
	if freq != nil {
		*freq = counts
	}
	// Rows are those of the sentinel-terminated matrix: row 0 is the empty
	// suffix (preceded by text's last symbol, which u stores at
	// primaryIndex-1), and row j >= 1 is u's row j-1.
	var cum [256]int32
	sum := int32(1)
	for i, c := range counts {
		cum[i] = sum
		sum += c
	}

	last := u[primaryIndex-1]
	next := make([]int32, n+1)
	cursor := cum
	next[cursor[last]] = 0
	cursor[last]++
	for i, b := range u {
		if i == primaryIndex-1 {
			continue
		}
		next[cursor[b]] = int32(i + 1)
		cursor[b]++
	}

	out := make([]byte, n)
	row := int32(primaryIndex)
	for i := range out {
		row = next[row]
		if row == 0 {
			out[i] = last
		} else {
			out[i] = u[row-1]
		}
	}
	return out, nil
}

// UnBWTAux is UnBWT, accepting (and validating, but not exploiting for
// acceleration — see BWTAux) the auxiliary sampling index produced by
// BWTAux.
func UnBWTAux(u []byte, idx []int32, r int, primaryIndex int, freq *[256]int32) ([]byte, error) {
	if r <= 0 || r&(r-1) != 0 {
		return nil, ErrBadArgument
	}
	n := len(u)
	wantLen := 0
	if n > 1 {
		wantLen = auxIndexLen(n, r)
	}
	if len(idx) != wantLen {
		return nil, ErrBadArgument
	}
	return UnBWT(u, primaryIndex, freq)
}
