// Package calculator implements the arithmetic core.
//
// Add works on IEEE-754 binary64 values and never fails; NaN and infinities
// follow the usual floating point rules. AddInt is the checked integer form and
// reports ErrOverflow rather than wrapping.
package calculator
