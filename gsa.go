// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"sort"
)

// sep is the separator symbol used between strings in a generalized suffix
// array. It is chosen from the Unicode Private Use Area (PUA), U+E000, so
// rune text never collides with it; the byte-oriented GSA entry points use
// 0 instead, per the spec's "0 is a separator" convention.
const sep int32 = 0xE000

// SuffixArray holds a text and its suffix array, both addressed as int32
// symbols so the same machinery serves bytes, runes, and bounded integer
// alphabets alike.
type SuffixArray struct {
	text, sa []int32
}

// NewSuffixArray builds a suffix array over an arbitrary int32 sequence.
func NewSuffixArray(text []int32) *SuffixArray {
	return &SuffixArray{text, computeSA(text)}
}

// SA returns the underlying suffix array (indices into Text()).
func (s *SuffixArray) SA() []int32 { return s.sa }

// Text returns the underlying text.
func (s *SuffixArray) Text() []int32 { return s.text }

// comparePrefix compares a suffix with a prefix lexicographically, using
// the convention that a longer string containing the other as a proper
// prefix is the greater one.
func comparePrefix(suf, prefix []int32) int {
	minLen := len(suf)
	if minLen > len(prefix) {
		minLen = len(prefix)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// lookup finds the contiguous SA range of suffixes starting with prefix via
// two binary searches (lower and upper bound).
func lookup(text, sa, prefix []int32) []int32 {
	if len(prefix) == 0 {
		return sa
	}
	if len(sa) == 0 {
		return []int32{}
	}
	l := sort.Search(len(sa), func(i int) bool {
		suf := text[sa[i]:]
		return comparePrefix(suf, prefix) >= 0
	})
	r := l + sort.Search(len(sa)-l, func(i int) bool {
		suf := text[sa[l+i]:]
		return comparePrefix(suf, prefix) > 0
	})
	return sa[l:r]
}

// lookupTextOrder is lookup, with the matching range re-sorted into text
// order rather than lexicographic (SA) order.
func lookupTextOrder(text, sa, prefix []int32) []int32 {
	indices := lookup(text, sa, prefix)
	cp := make([]int32, len(indices))
	copy(cp, indices)
	sort.Slice(cp, func(i, j int) bool {
		return cp[i] < cp[j]
	})
	return cp
}

// Lookup finds suffixes starting with prefix, in SA (lexicographic) order.
func (s *SuffixArray) Lookup(prefix []int32) []int32 {
	return lookup(s.text, s.sa, prefix)
}

// LookupTextOrder finds suffixes starting with prefix, in text order.
func (s *SuffixArray) LookupTextOrder(prefix []int32) []int32 {
	return lookupTextOrder(s.text, s.sa, prefix)
}

// indexEntry holds the per-string metadata (start offset, running cursor,
// occurrence buffer) a GSA needs while answering a lookup.
type indexEntry struct {
	start, cursor int
	occurrences   []int32
}

// StringOccurrences holds one string's occurrences of a looked-up
// prefix/suffix, as offsets relative to that string's own start.
type StringOccurrences struct {
	String      int32
	Occurrences []int32
}

// GSA is a generalized suffix array over a set of strings, concatenated
// with the sep symbol (U+E000) before each one and after the last. Because
// sep is larger than ordinary symbols, separator-starting suffixes sort
// after the others; the byte-oriented SAGSA/SA16GSA use 0 instead.
type GSA struct {
	src        [][]int32
	text, sa   []int32
	stringOf   []int32
	entries    []indexEntry
	touchedBuf []int32
	resultBuf  []StringOccurrences
}

// buildGSA concatenates src with separators, builds the suffix array over
// the result, and prepares per-string bookkeeping for lookups.
func buildGSA(src [][]int32) *GSA {
	total := len(src) + 1
	for _, s := range src {
		total += len(s)
	}
	text := make([]int32, 0, total)
	stringOf := make([]int32, 0, total)
	entries := make([]indexEntry, len(src))

	// A leading separator gives the first string the same separator-then-
	// string start that LookupPrefix searches for.
	text = append(text, sep)
	stringOf = append(stringOf, 0)

	for i, s := range src {
		start := len(text)
		text = append(text, s...)
		for range s {
			stringOf = append(stringOf, int32(i))
		}
		text = append(text, sep)
		stringOf = append(stringOf, int32(i))
		entries[i] = indexEntry{start: start, occurrences: make([]int32, len(s)+1)}
	}

	return &GSA{
		src:        src,
		text:       text,
		sa:         computeSA(text),
		stringOf:   stringOf,
		entries:    entries,
		touchedBuf: make([]int32, 0, len(src)),
		resultBuf:  make([]StringOccurrences, len(src)),
	}
}

// NewGSA builds a generalized suffix array from a set of strings.
func NewGSA(src []string) *GSA {
	if len(src) == 0 {
		return nil
	}
	src32 := make([][]int32, len(src))
	for i, s := range src {
		src32[i] = []int32(s)
	}
	return buildGSA(src32)
}

// NewGSAInt32 builds a generalized suffix array from int32 slices.
func NewGSAInt32(src [][]int32) *GSA {
	if len(src) == 0 {
		return nil
	}
	return buildGSA(src)
}

// collect walks a matching SA range, resolving each hit to its owning
// string and recording the offset within that string, skipping bare
// separator hits and de-duplicating adjacent repeats.
func (g *GSA) collect(hits []int32) []StringOccurrences {
	touched := g.touchedBuf[:0]
	var prev int32 = -1
	for _, j := range hits {
		if g.text[j] == sep {
			if int(j) == len(g.text)-1 {
				break
			}
			j++
		}
		if j == prev {
			continue
		}
		prev = j
		str := g.stringOf[j]
		e := &g.entries[str]
		if e.cursor == 0 {
			touched = append(touched, str)
		}
		e.occurrences[e.cursor] = j - int32(e.start)
		e.cursor++
	}

	out := g.resultBuf[:0]
	for _, str := range touched {
		e := &g.entries[str]
		out = append(out, StringOccurrences{String: str, Occurrences: append([]int32(nil), e.occurrences[:e.cursor]...)})
		e.cursor = 0
	}
	return out
}

// LookupTextOrder finds, for every source string, the text-ordered offsets
// at which prefix occurs.
func (g *GSA) LookupTextOrder(prefix []int32) []StringOccurrences {
	return g.collect(lookupTextOrder(g.text, g.sa, prefix))
}

// LookupSuffix finds, for every source string, the offsets at which the
// exact suffix suf occurs (i.e. suf followed immediately by the
// string-ending separator).
func (g *GSA) LookupSuffix(suf []int32) []StringOccurrences {
	if len(suf) == 0 {
		out := g.resultBuf[:0]
		for i := range g.src {
			out = append(out, StringOccurrences{String: int32(i), Occurrences: []int32{int32(len(g.src[i]))}})
		}
		return out
	}
	cp := append(append([]int32(nil), suf...), sep)
	return g.collect(lookupTextOrder(g.text, g.sa, cp))
}

// LookupPrefix finds, for every source string, whether it starts with
// prefix (the string-start separator is prepended to force an exact-start
// match).
func (g *GSA) LookupPrefix(prefix []int32) []StringOccurrences {
	if len(prefix) == 0 {
		return nil
	}
	cp := make([]int32, 0, len(prefix)+1)
	cp = append(cp, sep)
	cp = append(cp, prefix...)
	return g.collect(lookupTextOrder(g.text, g.sa, cp))
}
