// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import "errors"

// Sentinel errors returned by the public entry points. They map directly onto
// the historical {-1, -2} result codes of the C reference implementation this
// package is modeled on: ErrBadArgument is the -1 class (argument violation,
// no state mutated), ErrAlloc is the -2 class (resource exhaustion, any
// partial allocation released before returning). The numeric encoding is not
// part of this package's contract; callers compare against these sentinels
// with errors.Is.
var (
	// ErrBadArgument is returned when an input violates a documented
	// precondition (negative slack, missing GSA separator, a sampling rate
	// that isn't a power of two, an out-of-range alphabet symbol, ...).
	ErrBadArgument = errors.New("sais: bad argument")

	// ErrAlloc stands for the -2 (resource exhaustion) class. No function in
	// this package currently returns it: scratch space is ordinary Go
	// allocation, and size-contract violations are ErrBadArgument.
	ErrAlloc = errors.New("sais: allocation failed")
)
