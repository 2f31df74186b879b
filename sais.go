// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// denseAlphabetLimit is the cutoff between the dense, array-indexed bucket
// table (alphabet spanning at most this many symbols) and the sparse,
// map-indexed bucket table used by saisArb (spanning more). 256 comfortably covers byte text and the
// reduced alphabets the recursion produces; anything larger routes to the
// arbitrary-alphabet engine, which pays a map lookup per access but places
// no bound on the symbol range.
const denseAlphabetLimit = 256

// computeSA constructs a suffix array for the given text using the SA-IS
// algorithm (induced sorting of LMS suffixes). The returned slice holds the
// starting indices of every suffix of text, in ascending lexicographic
// order.
func computeSA(text []int32) []int32 {
	if len(text) == 0 {
		return []int32{}
	} else if len(text) == 1 {
		return []int32{0}
	}
	return sais(text, nil, nil, 0)
}

// sais is the recursive core of the SA-IS algorithm. It classifies the
// alphabet in a single right-to-left scan and then dispatches to whichever
// of the two bucketTable implementations fits: induceSortDense for a small,
// contiguous alphabet, saisArb for anything larger or sparser. Both engines
// share the same induction passes (buckets.go); only how they address a
// symbol's bucket differs.
//
//   - text: input sequence.
//   - sa: output suffix array, or nil to allocate one sized to text.
//   - data: scratch array for frequency/bucket tables, or nil to allocate.
//   - srcAlphaSize: alphabet size of the top-level call; recursive calls
//     reuse it so the shared scratch array never needs to grow.
func sais(text, sa, data []int32, srcAlphaSize int32) []int32 {
	var (
		minChar, maxChar int32 = text[0], text[0]
		l, r, numLMS     int32
		sType            bool
	)
	// Right-to-left scan: classify S/L types, count LMS positions, and
	// track the character range in a single pass.
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < minChar {
			minChar = l
		}
		if l > maxChar {
			maxChar = l
		}
		if l < r {
			sType = true
		} else if l > r && sType {
			sType = false
			numLMS++
		}
	}
	currAlphaSize := maxChar - minChar + 1
	if sa == nil {
		srcAlphaSize = currAlphaSize
		sa = make([]int32, len(text))
	}
	if currAlphaSize > denseAlphabetLimit || currAlphaSize > srcAlphaSize {
		return saisArb(text, sa, data, numLMS)
	}
	return induceSortDense(text, sa, data, minChar, numLMS, srcAlphaSize, currAlphaSize)
}

// induceSortDense runs the full SA-IS pipeline over a dense, array-indexed
// bucket table: build histograms, place LMS suffixes, induce L- and
// S-types, name the LMS substrings, recurse on the reduced problem if
// needed, then induce the final suffix array.
func induceSortDense(text, sa, data []int32, minChar, numLMS, srcAlphaSize, currAlphaSize int32) []int32 {
	if data == nil || len(data) < int(srcAlphaSize)*2 {
		data = make([]int32, srcAlphaSize*2)
	}
	freq := data[:currAlphaSize]
	cursor := data[srcAlphaSize : srcAlphaSize+currAlphaSize]
	frequency(text, freq, minChar)
	bt := &denseBuckets{text: text, freq: freq, cursor: cursor, minChar: minChar}

	insertLMS(text, sa, bt)
	if numLMS > 1 {
		induceSubL(text, sa, bt)
		induceSubS(text, sa, bt)
		summary := sa[len(sa)-int(numLMS):]
		maxName := summarise(text, sa, summary, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			sais(summary, summarySA, data, srcAlphaSize)
			unmap(text, sa, summarySA, summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		expand(text, sa, summarySA, bt)
	}
	induceL(text, sa, bt)
	induceS(text, sa, bt)
	return sa
}

// unmap maps LMS substring indices from the recursively-sorted summary
// array back to their positions in the original text.
func unmap(text, sa, summarySA, lms []int32) {
	var (
		j     int32 = int32(len(lms))
		l, r  int32
		sType bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sType = true
		} else if l > r && sType {
			sType = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := 0; i < len(lms); i++ {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

// frequency counts occurrences of each symbol in text into freq, indexed by
// symbol value minus minChar.
func frequency(text, freq []int32, minChar int32) {
	clear(freq)
	for _, v := range text {
		freq[v-minChar]++
	}
}

// lengthLMS records, for each LMS position (packed two-to-a-slot in sa by
// the namer), the length of the LMS substring starting there.
func lengthLMS(text, sa []int32) {
	var (
		l, r  int32
		prev  int32 = int32(len(text)) - 1
		sType bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sType = true
		} else if l > r && sType {
			sType = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

// equalLMS reports whether the LMS substrings starting at l and r are
// symbol-for-symbol identical.
func equalLMS(text []int32, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}
	return true
}

// summarise assigns a dense name in [1, m] to each LMS substring (now in
// sorted order in sa[0:numLMS]) and packs the reduced problem into summary.
// Returns the number of distinct names; if it equals numLMS, every LMS
// substring is unique and the recursion can be skipped.
func summarise(text, sa, summary []int32, numLMS int32) int32 {
	lengthLMS(text, sa)
	var (
		name, maxName int32 = 1, 1
		posLMS              = summary
		prev, curr    int32
		prevLen       int32 = sa[posLMS[0]/2]
	)
	sa[posLMS[0]/2] = name
	for i := 1; i < len(posLMS); i++ {
		prev = posLMS[i-1]
		curr = posLMS[i]
		if !equalLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= numLMS {
		return maxName
	}
	var j int
	for i := 0; i < len(sa)/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], summary[j] = 0, curr
		j++
	}
	return maxName
}
