// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// resolveThreads turns a caller-supplied thread count into a concrete one:
// a positive value is used as-is, 0 consults the host's logical core count
// (spec section 6: "the concurrency runtime's notion of 'max threads'...
// is consulted only when the caller passes 0"), and anything negative
// collapses to a single thread rather than being treated as an error —
// callers that don't care about concurrency shouldn't have to reason about
// it.
func resolveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	if threads < 0 {
		return 1
	}
	n := cpuid.CPU.LogicalCores
	if n < 1 {
		return 1
	}
	return n
}

// blockBounds splits [0, n) into up to parts equal-stride, non-empty
// blocks, the static partitioning scheme spec section 5 calls for ("static,
// equal-stride block partitioning of the scan index range").
func blockBounds(n, parts int) [][2]int {
	if parts < 1 {
		parts = 1
	}
	if parts > n {
		parts = n
	}
	if parts <= 1 {
		if n == 0 {
			return nil
		}
		return [][2]int{{0, n}}
	}
	bounds := make([][2]int, 0, parts)
	stride := n / parts
	rem := n % parts
	start := 0
	for i := 0; i < parts; i++ {
		size := stride
		if i < rem {
			size++
		}
		bounds = append(bounds, [2]int{start, start + size})
		start += size
	}
	return bounds
}

// parallelFreqBytes counts byte occurrences using block-partitioned
// goroutines, each accumulating into a private 256-entry histogram (the
// "4·|Σ| bucket counter" per-thread state of spec section 5, narrowed to
// the single counter this front end needs), reconciled into the final
// table at a single barrier once every goroutine finishes — no
// fine-grained locking, matching the spec's concurrency contract.
func parallelFreqBytes(text []byte, threads int) [256]int32 {
	var total [256]int32
	threads = resolveThreads(threads)
	bounds := blockBounds(len(text), threads)
	if len(bounds) <= 1 {
		for _, b := range text {
			total[b]++
		}
		return total
	}

	partials := make([][256]int32, len(bounds))
	var wg sync.WaitGroup
	for t, bound := range bounds {
		wg.Add(1)
		go func(t int, lo, hi int) {
			defer wg.Done()
			var local [256]int32
			for _, b := range text[lo:hi] {
				local[b]++
			}
			partials[t] = local
		}(t, bound[0], bound[1])
	}
	wg.Wait()

	for _, p := range partials {
		for i := range total {
			total[i] += p[i]
		}
	}
	return total
}

// parallelCopyBWT copies the final left-to-right BWT-symbol scan's output
// into dst using block-partitioned goroutines — the embarrassingly
// parallel "(f) BWT copy" scan named in spec section 5, since by the time
// this runs every symbol is already known and independent of its
// neighbors.
func parallelCopyBWT(dst []byte, sa []int32, text []byte, threads int) {
	n := len(text)
	threads = resolveThreads(threads)
	bounds := blockBounds(n, threads)
	if len(bounds) <= 1 {
		copyBWTRange(dst, sa, text, 0, n)
		return
	}
	var wg sync.WaitGroup
	for _, bound := range bounds {
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			copyBWTRange(dst, sa, text, lo, hi)
		}(bound[0], bound[1])
	}
	wg.Wait()
}

// copyBWTRange fills dst[lo:hi] with the BWT symbols for rows lo..hi.
func copyBWTRange(dst []byte, sa []int32, text []byte, lo, hi int) {
	n := len(text)
	for i := lo; i < hi; i++ {
		p := int(sa[i])
		if p == 0 {
			dst[i] = text[n-1]
		} else {
			dst[i] = text[p-1]
		}
	}
}
