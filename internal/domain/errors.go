package domain

import (
	"errors"

	"calc/internal/calculator"
)

var (
	// ErrInvalidOperand is returned when an input cannot be read as a number.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrOverflow is returned when a checked integer sum is out of range.
	ErrOverflow = calculator.ErrOverflow

	// ErrWrongPassphrase is returned when the passphrase is incorrect or the
	// encrypted history has been modified.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted history")
)
