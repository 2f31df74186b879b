// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// bucketTable is the cursor abstraction the induction passes place suffixes
// through: one mutable [front, back] window per symbol, with a front cursor
// that advances for L-type placement and a back cursor that retreats for
// S-type and LMS placement. denseBuckets addresses a symbol directly as an
// array index (minChar..maxChar); sparseBuckets addresses it through a map
// keyed by raw symbol value, for alphabets too large or sparse for an array.
// Sharing this interface lets every induction pass (insertLMS, induceSubL,
// induceSubS, induceL, induceS, expand) be written once instead of twice.
type bucketTable interface {
	// takeFront returns sym's next free front slot and advances the cursor.
	takeFront(sym int32) int32
	// takeBack returns sym's next free back slot and retreats the cursor.
	takeBack(sym int32) int32
	// rewindFront recomputes every symbol's front cursor from its bucket
	// size, ahead of the next L-type pass.
	rewindFront()
	// rewindBack recomputes every symbol's back cursor from its bucket
	// size, ahead of the next S-type pass.
	rewindBack()
	// refresh recomputes bucket sizes themselves, for the one engine
	// (dense) whose size data shares backing storage with the recursive
	// call's scratch array and can be clobbered by it.
	refresh()
}

// denseBuckets is the array-indexed bucketTable used when the alphabet's
// span maxChar-minChar+1 is at most denseAlphabetLimit.
type denseBuckets struct {
	text         []int32
	freq, cursor []int32
	minChar      int32
}

func (d *denseBuckets) takeFront(sym int32) int32 {
	idx := sym - d.minChar
	b := d.cursor[idx]
	d.cursor[idx] = b + 1
	return b
}

func (d *denseBuckets) takeBack(sym int32) int32 {
	idx := sym - d.minChar
	b := d.cursor[idx]
	d.cursor[idx] = b - 1
	return b
}

func (d *denseBuckets) rewindFront() { bucketStart(d.freq, d.cursor) }
func (d *denseBuckets) rewindBack()  { bucketEnd(d.freq, d.cursor) }

// refresh re-derives freq from text: the recursive sais call reuses the
// shared scratch array data (which freq aliases into) for its own inner
// bucket table, so freq must be rebuilt once after any recursion before it
// is trusted again. Grounded on the teacher's induceSort, whose expand
// helper re-calls frequency for exactly this reason.
func (d *denseBuckets) refresh() { frequency(d.text, d.freq, d.minChar) }

// bucketStart turns freq into a prefix sum giving, per symbol, the index of
// the first slot of that symbol's bucket.
func bucketStart(freq, cursor []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			cursor[i] = offset
			offset += n
		}
	}
}

// bucketEnd turns freq into a prefix sum giving, per symbol, the index of
// the last slot of that symbol's bucket.
func bucketEnd(freq, cursor []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			offset += n
			cursor[i] = offset - 1
		}
	}
}

// sparseBuckets is the map-indexed bucketTable used when the alphabet is too
// large or sparse for denseBuckets. order holds the distinct symbols in
// ascending order, size their per-symbol bucket size; both are immutable
// once built, so rewindFront/rewindBack can always recompute cursor fresh
// from them exactly as denseBuckets recomputes from freq, with no risk of
// data ever clobbering them (nothing threads the map through recursion).
type sparseBuckets struct {
	order  []int32
	size   map[int32]int32
	cursor map[int32]int32
}

func (s *sparseBuckets) takeFront(sym int32) int32 {
	b := s.cursor[sym]
	s.cursor[sym] = b + 1
	return b
}

func (s *sparseBuckets) takeBack(sym int32) int32 {
	b := s.cursor[sym]
	s.cursor[sym] = b - 1
	return b
}

func (s *sparseBuckets) rewindFront() {
	var offset int32
	for _, sym := range s.order {
		s.cursor[sym] = offset
		offset += s.size[sym]
	}
}

func (s *sparseBuckets) rewindBack() {
	var offset int32
	for _, sym := range s.order {
		offset += s.size[sym]
		s.cursor[sym] = offset - 1
	}
}

// refresh is a no-op: sparseBuckets' size map never aliases the recursive
// call's scratch array, so nothing can clobber it.
func (s *sparseBuckets) refresh() {}

// insertLMS gathers LMS positions (via a right-to-left type scan) and
// radix-places them at the tail of their first-symbol bucket.
func insertLMS(text, sa []int32, bt bucketTable) {
	bt.rewindBack()
	var (
		l, r, i, lastLMS int32
		numLMS           int
		sType            bool
	)
	for i = int32(len(text) - 1); i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sType = true
		} else if l > r && sType {
			sType = false
			b := bt.takeBack(r)
			sa[b] = i + 1
			lastLMS = b
			numLMS++
		}
	}
	if numLMS > 1 {
		sa[lastLMS] = 0
	}
}

// induceSubL induces L-type suffixes during the reduced-problem pass: a
// left-to-right scan that both reads and overwrites sa, using the sign bit
// to mark "not yet induced" suffixes that the S-pass still needs to see.
func induceSubL(text, sa []int32, bt bucketTable) {
	bt.rewindFront()
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
	)
	if l < r {
		k = -k
	}
	sa[bt.takeFront(lastChar)] = int32(k)

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		j = sa[i]
		if j < 0 {
			sa[i] = -j
			continue
		}
		sa[i] = 0
		k = j - 1
		l, r = text[k-1], text[k]
		if l < r {
			k = -k
		}
		sa[bt.takeFront(r)] = k
	}
}

// induceSubS induces S-type suffixes during the reduced-problem pass,
// symmetric to induceSubL but scanning right-to-left and growing bucket
// tails; already-induced (sign-tagged) entries are compacted to the top of
// sa where the namer expects to find them.
func induceSubS(text, sa []int32, bt bucketTable) {
	bt.rewindBack()
	var (
		j, l, r, k int32
		top        = len(sa)
	)
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = -j
			continue
		}
		k = j - 1
		l, r = text[k-1], text[k]
		if l > r {
			k = -k
		}
		sa[bt.takeBack(r)] = k
	}
}

// induceL is the final left-to-right induction pass, producing fully
// ordered L-type suffixes in sa.
func induceL(text, sa []int32, bt bucketTable) {
	bt.rewindFront()
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
	)
	if l < r {
		k = -k
	}
	sa[bt.takeFront(lastChar)] = int32(k)

	for i := 0; i < len(sa); i++ {
		j = sa[i]
		if j <= 0 {
			continue
		}
		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l < r {
				k = -k
			}
		}
		sa[bt.takeFront(r)] = k
	}
}

// induceS is the final right-to-left induction pass, producing fully
// ordered S-type suffixes in sa and leaving every cell non-negative.
func induceS(text, sa []int32, bt bucketTable) {
	bt.rewindBack()
	var j, l, r, k int32
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j
		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l <= r {
				k = -k
			}
		}
		sa[bt.takeBack(r)] = k
	}
}

// expand places the now-sorted LMS suffixes into their final buckets in the
// suffix array, working from the bucket tails backward so that order is
// preserved.
func expand(text, sa, summarySA []int32, bt bucketTable) {
	bt.refresh()
	bt.rewindBack()
	var lmsIdx, j int32
	for i := len(summarySA) - 1; i >= 0; i-- {
		lmsIdx = summarySA[i]
		summarySA[i] = 0
		j = text[lmsIdx]
		sa[bt.takeBack(j)] = lmsIdx
	}
}
