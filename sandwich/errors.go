// SPDX-License-Identifier: MIT
// Package sandwich: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// package. All entry points MUST return these sentinels and tests MUST check
// them via errors.Is. No function panics on user-triggered error conditions.

package sandwich

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sandwich: ..." for consistency and to allow
// easy grepping across logs. When call-site context is essential, wrap with
// fmt.Errorf("Op: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrDimensionMismatch indicates that the residual vector length does not
	// equal the number of design-matrix rows.
	ErrDimensionMismatch = errors.New("sandwich: dimension mismatch")

	// ErrSingularMatrix is returned when X'X is not invertible. It originates
	// in the inverse step of Sandwich, never in Middle itself.
	ErrSingularMatrix = errors.New("sandwich: singular matrix")

	// ErrEmptyInput indicates a design matrix with zero rows or zero columns.
	ErrEmptyInput = errors.New("sandwich: empty input")

	// ErrUnknownStrategy marks a Strategy value outside the closed set.
	// Strategy is a plain int, so dispatch must fail closed.
	ErrUnknownStrategy = errors.New("sandwich: unknown strategy")
)
